/*
Package main implements the acrolex recognition server and CLI.

Acrolex recognizes longform expansions of abbreviations by locating
defining patterns ("longform (SHORTFORM)") in text and grounding the
discovered longform against a dictionary. It can operate as a JSON IPC
server over stdin/stdout for pipeline integration, or process a single
text from the command line.

# Usage

Start the server with dictionaries from the configured directory:

	acrolex

Use a custom dictionary directory and enable debug logging:

	acrolex -dicts /path/to/dictionaries -d

Recognize or strip a single text without starting the server:

	acrolex -shortform SC -recognize "Induced stem cells (SC) ..."
	acrolex -shortform SC -strip "Induced stem cells (SC) ..."

# Configuration

Runtime configuration lives in a TOML file, created with defaults on
first run:

	[recognizer]
	window = 100

	[dict]
	dir = "dictionaries"

	[scorer]
	enabled = true
	len_penalty = 0.05

The dictionary directory holds one file per shortform, either binary
(.bin, msgpack) or text (.tsv). Shortforms without a dictionary fall
back to one-shot alignment recognition when the scorer capability is
compiled in.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/acrolab/acrolex/internal/logger"
	"github.com/acrolab/acrolex/pkg/config"
	"github.com/acrolab/acrolex/pkg/dictionary"
	"github.com/acrolab/acrolex/pkg/recognize"
	"github.com/acrolab/acrolex/pkg/score"
	"github.com/acrolab/acrolex/pkg/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.toml")
		dictDir    = flag.String("dicts", "", "dictionary directory (overrides config)")
		shortform  = flag.String("shortform", "", "shortform for one-off recognize/strip")
		recText    = flag.String("recognize", "", "recognize defining patterns in the given text and exit")
		stripText  = flag.String("strip", "", "strip defining patterns from the given text and exit")
		debug      = flag.Bool("d", false, "enable debug logging")
	)
	flag.Parse()

	logger.SetDebug(*debug)
	log.SetDefault(logger.New("acrolex"))

	cfg, cfgPath := config.LoadWithPriority(*configPath)
	if cfgPath != "" {
		log.Debugf("Using config: %s", cfgPath)
	}
	if *dictDir != "" {
		cfg.Dict.Dir = *dictDir
	}
	if !score.Available() {
		log.Info("Alignment scorer not available, one-shot recognition disabled")
		cfg.Scorer.Enabled = false
	}
	params := score.Params{LenPenalty: cfg.Scorer.LenPenalty}

	recognizers := loadRecognizers(cfg)

	if *recText != "" || *stripText != "" {
		if err := runOnce(cfg, recognizers, *shortform, *recText, *stripText, params); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	srv := server.NewServer(recognizers, cfg.Recognizer.Window, cfg.Scorer.Enabled, params)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadRecognizers builds an exact recognizer per dictionary file found.
// A missing or empty directory is not fatal: the server can still run
// with one-shot recognition only.
func loadRecognizers(cfg *config.Config) map[string]recognize.Recognizer {
	recognizers := make(map[string]recognize.Recognizer)
	dicts, err := dictionary.LoadAll(cfg.Dict.Dir)
	if err != nil {
		log.Warnf("No dictionaries loaded: %v", err)
		return recognizers
	}
	for shortform, dict := range dicts {
		rec, err := recognize.FromDictionary(dict, cfg.Recognizer.Window)
		if err != nil {
			log.Warnf("Skipping dictionary for %s: %v", shortform, err)
			continue
		}
		recognizers[shortform] = rec
		log.Debugf("Loaded recognizer for %s (%d longforms)", shortform, len(dict.Entries))
	}
	log.Infof("Loaded %d recognizers from %s", len(recognizers), cfg.Dict.Dir)
	return recognizers
}

func runOnce(cfg *config.Config, recognizers map[string]recognize.Recognizer,
	shortform, recText, stripText string, params score.Params) error {
	if shortform == "" {
		return fmt.Errorf("-shortform is required with -recognize/-strip")
	}
	rec, ok := recognizers[shortform]
	if !ok {
		if !cfg.Scorer.Enabled {
			return fmt.Errorf("no dictionary for %q and one-shot recognition is disabled", shortform)
		}
		var err error
		rec, err = recognize.NewOneShotRecognizer(shortform, cfg.Recognizer.Window, params)
		if err != nil {
			return err
		}
	}
	if recText != "" {
		for _, r := range rec.Recognize(recText) {
			if r.Grounding != "" {
				fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", r.LongformText, r.Longform, r.Grounding)
			} else {
				fmt.Fprintf(os.Stdout, "%s\t%s\t%.3f\n", r.LongformText, r.Longform, r.Score)
			}
		}
	}
	if stripText != "" {
		fmt.Fprintln(os.Stdout, rec.StripDefiningPatterns(stripText))
	}
	return nil
}
