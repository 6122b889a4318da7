// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/theckman/yacspin"
)

// spinner shows progress on stderr. It does nothing when stderr is not a terminal.
type spinner struct {
	spinner *yacspin.Spinner
}

func newSpinner(message string) *spinner {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return &spinner{}
	}

	return newSpinnerWriter(os.Stderr, message)
}

func newSpinnerWriter(writer io.Writer, message string) *spinner {
	config := yacspin.Config{
		Writer:            writer,
		Frequency:         200 * time.Millisecond,
		CharSet:           yacspin.CharSets[33],
		Suffix:            " ",
		Message:           message,
		StopCharacter:     "(✓) Done",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "(x) Error",
		StopFailColors:    []string{"fgRed"},
	}

	s, err := yacspin.New(config)
	if err != nil {
		log.Printf("failed to create spinner: %v", err)
		return &spinner{}
	}

	return &spinner{spinner: s}
}

func (s *spinner) Start() {
	if s.spinner == nil {
		return
	}

	if err := s.spinner.Start(); err != nil {
		log.Printf("failed to start spinner: %v", err)
	}
}

// Stop ends the spinner with the success or failure mark.
func (s *spinner) Stop(err error) {
	if s.spinner == nil {
		return
	}

	if err != nil {
		_ = s.spinner.StopFail()
		return
	}

	_ = s.spinner.Stop()
}
