package event

import "time"

// DomainEvent is anything the host event loop can deliver to sinks.
type DomainEvent interface {
	Sender() string
}

// MessageReceived is an inbound chat message as seen by the relay.
type MessageReceived struct {
	SenderChatID string
	SenderName   string
	Text         string
	At           time.Time
}

func (m MessageReceived) Sender() string {
	return m.SenderChatID
}
