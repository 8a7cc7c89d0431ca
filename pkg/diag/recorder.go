package diag

import "sync"

// 🧪 Recorder captures events in order for inspection in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Event is one recorded diagnostic.
type Event struct {
	Warn    bool
	Message string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Message: msg})
}

func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Warn: true, Message: msg})
}

// Events returns a copy of everything recorded so far, in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Warnings returns only the warning messages, in order.
func (r *Recorder) Warnings() []string {
	var out []string
	for _, e := range r.Events() {
		if e.Warn {
			out = append(out, e.Message)
		}
	}
	return out
}

// Infos returns only the routine messages, in order.
func (r *Recorder) Infos() []string {
	var out []string
	for _, e := range r.Events() {
		if !e.Warn {
			out = append(out, e.Message)
		}
	}
	return out
}
