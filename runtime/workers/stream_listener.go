package workers

import (
	"chat-relay/domain/event"
	"chat-relay/platform"
	"context"
	"log/slog"
	"time"
)

// StreamListener long-polls the platform event stream and feeds inbound
// messages to the host event channel. Poll failures are logged and
// retried after PollInterval; they never crash the host.
type StreamListener struct {
	Log          *slog.Logger
	Client       platform.IClient
	Events       chan<- event.DomainEvent
	PollInterval time.Duration

	cursor string
}

func NewStreamListener(log *slog.Logger, client platform.IClient, events chan<- event.DomainEvent, pollInterval time.Duration) *StreamListener {
	return &StreamListener{Log: log, Client: client, Events: events, PollInterval: pollInterval}
}

func (w *StreamListener) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		batch, err := w.Client.PollEvents(ctx, w.cursor)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.Log.Warn("Event poll failed", "error", err)
			if !w.sleep(ctx) {
				return nil
			}
			continue
		}
		w.cursor = batch.Cursor

		for _, message := range batch.Messages {
			evt := event.MessageReceived{
				SenderChatID: message.SenderChatID,
				SenderName:   message.SenderName,
				Text:         message.Text,
				At:           time.UnixMilli(message.TimestampMs).UTC(),
			}
			select {
			case w.Events <- evt:
			case <-ctx.Done():
				return nil
			}
		}

		// An empty batch means the long poll timed out server-side;
		// pause briefly instead of hammering the endpoint.
		if len(batch.Messages) == 0 {
			if !w.sleep(ctx) {
				return nil
			}
		}
	}
}

func (w *StreamListener) sleep(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(w.PollInterval):
		return true
	}
}
