// Package forward implements the message-forwarding relay: inbound chat
// events matching configured keywords are relayed to a fixed set of
// configured receivers, each resolved to a platform user and reached
// through a cached or freshly provisioned 1-to-1 conversation.
package forward

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"context"
	"log/slog"
	"sort"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Forward is the event sink the host registers when the component is
// enabled. It filters self-originated events, matches keywords and hands
// matching messages to the dispatcher, at most once per event.
type Forward struct {
	log        *slog.Logger
	selfChatID string
	matcher    *goahocorasick.Machine
	dispatcher IDispatcher
}

var _ contract.EventSink = (*Forward)(nil)

func New(log *slog.Logger, cfg Config, selfChatID string, dispatcher IDispatcher) (*Forward, error) {
	matcher, err := newKeywordMatcher(cfg.Keywords)
	if err != nil {
		return nil, err
	}
	return &Forward{log: log, selfChatID: selfChatID, matcher: matcher, dispatcher: dispatcher}, nil
}

// newKeywordMatcher builds the Aho-Corasick automaton used for
// case-sensitive substring matching. The builder expects sorted unique
// patterns; the config loader already deduplicated them.
func newKeywordMatcher(keywords []string) (*goahocorasick.Machine, error) {
	patterns := make([][]rune, len(keywords))
	for i, keyword := range keywords {
		patterns[i] = []rune(keyword)
	}
	sort.Slice(patterns, func(i, j int) bool { return string(patterns[i]) < string(patterns[j]) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

func (f *Forward) Consume(ctx context.Context, e event.DomainEvent) error {
	message, ok := e.(event.MessageReceived)
	if !ok {
		return nil
	}
	f.handle(ctx, message)
	return nil
}

func (f *Forward) handle(ctx context.Context, message event.MessageReceived) {
	// Relaying our own messages could loop through the event stream.
	if message.SenderChatID == f.selfChatID {
		f.log.Warn("Message from myself is not supported")
		return
	}

	// Return on the first hit: however many keywords match, the event
	// triggers exactly one forward.
	hits := f.matcher.MultiPatternSearch([]rune(message.Text), true)
	if len(hits) == 0 {
		return
	}

	f.log.Info("Forward keyword triggered", "keyword", string(hits[0].Word), "message", message.Text)
	f.dispatcher.Send(ctx, message.Text)
}
