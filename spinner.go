package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
)

// spinner draws a loading animation while a fetch or solve is running. It
// only animates on a terminal; otherwise it prints one line per Start.
type spinner struct {
	mu      sync.Mutex
	w       io.Writer
	active  bool
	stop    chan struct{}
	done    chan struct{}
	message string
	frames  []string
	start   time.Time
	isTTY   bool
}

func newSpinner(f *os.File) *spinner {
	return &spinner{
		w:      f,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		isTTY:  isTerminal(f),
	}
}

// Start is a no-op on a nil spinner.
func (s *spinner) Start(msg string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.message = msg
	s.start = time.Now()
	s.mu.Unlock()

	if !s.isTTY {
		_, _ = fmt.Fprintf(s.w, "⋯ %s\n", msg)
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		i := 0
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.mu.Lock()
				elapsed := time.Since(s.start).Round(100 * time.Millisecond)
				_, _ = fmt.Fprintf(s.w, "\r%s%s %s%s %s[%s]%s  ", colorCyan, s.frames[i%len(s.frames)], s.message, colorReset, colorDim, elapsed, colorReset)
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop clears the animation. It is a no-op on a nil or idle spinner.
func (s *spinner) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	stopCh := s.stop
	doneCh := s.done
	s.mu.Unlock()

	if s.isTTY && stopCh != nil {
		close(stopCh)
		<-doneCh
		_, _ = fmt.Fprint(s.w, "\r\033[K")
	}
}
