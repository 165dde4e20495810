package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner animates a message on stderr while a step runs. It does nothing
// when stderr is not a terminal or the Writer was built with custom outputs.
type Spinner struct {
	spinner *spinner.Spinner
}

// Spinner creates a stopped spinner showing message.
func (w *Writer) Spinner(message string) *Spinner {
	f, ok := w.errOut.(*os.File)
	if !ok {
		return &Spinner{}
	}

	opts := []spinner.Option{
		spinner.WithWriterFile(f),
		spinner.WithSuffix(" " + message),
		spinner.WithHiddenCursor(true),
	}
	if !w.noColor {
		opts = append(opts, spinner.WithColor("cyan"))
	}

	return &Spinner{spinner: spinner.New(spinner.CharSets[14], 100*time.Millisecond, opts...)}
}

// Start starts the animation.
func (s *Spinner) Start() {
	if s.spinner != nil {
		s.spinner.Start()
	}
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if s.spinner != nil {
		s.spinner.Stop()
	}
}
