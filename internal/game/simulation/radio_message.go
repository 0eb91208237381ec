package simulation

import (
	"time"
)

type EventKind int

const (
	RunStarted EventKind = iota
	CheckpointCaptured
	RunFinished
)

var EventKindStringMap = map[EventKind]string{
	RunStarted:         "START",
	CheckpointCaptured: "CAPTURE",
	RunFinished:        "FINISH",
}

// Message is one line of the in-flight event log.
type Message struct {
	Timestamp time.Time
	Elapsed   float64
	Kind      EventKind
	Text      string
}

func (l *Loop) addMessage(kind EventKind, text string) {
	msg := Message{
		Timestamp: l.clock(),
		Elapsed:   l.state.Elapsed,
		Kind:      kind,
		Text:      text,
	}
	l.messages = append(l.messages, msg)

	if len(l.messages) > l.maxMessages {
		l.messages = l.messages[len(l.messages)-l.maxMessages:]
	}
}

// Messages returns a copy of the most recent events, oldest first.
func (l *Loop) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}
