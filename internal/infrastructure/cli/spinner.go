package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const spinnerTick = 80 * time.Millisecond

// Spinner redraws "<frame> <label> (1.2s)" on one line while a lookup is in
// flight. It is single-use; Stop before Start makes Start a no-op.
type Spinner struct {
	out   io.Writer
	label string
	tick  time.Duration

	mu      sync.Mutex
	started bool
	halt    chan struct{}
	drawn   chan struct{}
	once    sync.Once
}

// NewSpinner returns an idle spinner writing to w.
func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{
		out:   w,
		label: label,
		tick:  spinnerTick,
		halt:  make(chan struct{}),
		drawn: make(chan struct{}),
	}
}

// Start begins drawing in the background.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	select {
	case <-s.halt:
		return
	default:
	}
	s.started = true
	go s.draw(time.Now())
}

func (s *Spinner) draw(since time.Time) {
	defer close(s.drawn)
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for frame := 0; ; frame++ {
		elapsed := time.Since(since).Seconds()
		fmt.Fprintf(s.out, "\r%c %s (%.1fs)", spinnerFrames[frame%len(spinnerFrames)], s.label, elapsed)
		select {
		case <-s.halt:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Stop erases the spinner line and returns once nothing else will be written.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		close(s.halt)
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.drawn
		}
	})
}
