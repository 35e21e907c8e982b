package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type payout struct {
	Seat   int    `json:"seat"`
	Amount int    `json:"amount"`
	Cards  string `json:"cards,omitempty"`
}

func TestValidateSnapshot(t *testing.T) {
	a := assert.New(t)

	a.True(ValidateSnapshot(t, []payout{
		{Seat: 0, Amount: 400, Cards: "AhAd"},
		{Seat: 3, Amount: 100},
	}, 0))

	a.True(validateFromHelper(t, payout{Seat: 1, Amount: -50}))
}

func validateFromHelper(t *testing.T, obj interface{}) bool {
	t.Helper()
	return ValidateSnapshot(t, obj, 1)
}
