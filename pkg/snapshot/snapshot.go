// Package snapshot compares values against JSON files kept in testdata.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerengine/internal/util"
)

// UpdateEnv rewrites every snapshot instead of comparing when set to true
const UpdateEnv = "PE_UPDATE_SNAPSHOTS"

var (
	mu    sync.Mutex
	calls = make(map[string]int)
)

// ValidateSnapshot compares obj, encoded as indented JSON, with testdata/<func>-<n>.json
// where n counts the calls made from the same test function. depth is the number of
// helper frames between the test and this call. Missing snapshots are written.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := snapshotFile(depth + 1)

	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.GetenvBool(UpdateEnv) {
		write(t, filename, got)
		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(got)), msgAndArgs...) {
		t.Logf("snapshot %s, set %s=true to update", filename, UpdateEnv)
		return false
	}

	return true
}

func snapshotFile(skip int) string {
	pc, _, _, _ := runtime.Caller(skip + 1)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	mu.Lock()
	defer mu.Unlock()

	call := calls[funcName]
	calls[funcName] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
