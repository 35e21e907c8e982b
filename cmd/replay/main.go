package main

import (
	"flag"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokerengine/internal/config"
	"pokerengine/internal/rng"
	"pokerengine/pkg/deck"
	"pokerengine/pkg/handhistory"
)

var (
	file        = flag.String("file", "hand.yaml", "the hand to replay")
	asJSON      = flag.Bool("json", false, "print the hand history as JSON")
	variantName = flag.String("variant", "", "override the hand's variant")
)

func main() {
	flag.Parse()
	setupLogger()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	hf, err := loadHandFile(*file)
	if err != nil {
		logrus.WithError(err).Fatal("could not load the hand")
	}

	if *variantName != "" {
		hf.Variant = *variantName
		hf.Definition = nil
	}

	def, g, err := hf.play(logrus.StandardLogger(), config.Instance())
	if g == nil {
		logrus.WithError(err).Fatal("could not deal the hand")
	}

	if err != nil {
		logrus.WithError(err).Error("replay stopped")
	}

	if *asJSON {
		h, err := handhistory.FromGame(def.Name, g)
		if err != nil {
			logrus.WithError(err).Fatal("could not build the hand history")
		}

		data, err := h.JSON()
		if err != nil {
			logrus.WithError(err).Fatal("could not encode the hand history")
		}

		_, _ = os.Stdout.Write(append(data, '\n'))
		return
	}

	if err := render(def.Title(), g); err != nil {
		logrus.WithError(err).Fatal("could not render the hand")
	}
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func newDeck(gen rng.Generator) *deck.Deck {
	d := deck.New()
	d.Shuffle(gen)
	return d
}
