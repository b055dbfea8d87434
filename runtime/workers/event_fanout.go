package workers

import (
	"chat-relay/contract"
	"chat-relay/domain/event"
	"context"
	"log/slog"
)

// EventFanout delivers every inbound event to each registered handler
// sink. Best-effort: no ordering, durability or retry guarantees.
//
// Each event is handled in its own goroutine, so a handler suspended on
// a network call never blocks the inbound stream and two events may be
// in flight concurrently.
type EventFanout struct {
	Log    *slog.Logger
	Events chan event.DomainEvent
	sinks  []contract.EventSink
}

func NewEventFanout(log *slog.Logger, events chan event.DomainEvent) *EventFanout {
	return &EventFanout{Log: log, Events: events}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.Events:
			go w.fanout(ctx, evt)
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// fanout delivers one event to every sink; a sink error is logged and
// the remaining sinks still receive the event.
func (w *EventFanout) fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.Log.Warn("Event sink failed", "sender", evt.Sender(), "error", err)
		}
	}
}
