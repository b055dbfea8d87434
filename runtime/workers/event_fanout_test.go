package workers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"chat-relay/domain/event"
	"chat-relay/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_DeliversToAllSinks(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink1 := mocks.NewMockEventSink(ctrl)
	sink2 := mocks.NewMockEventSink(ctrl)

	evt := event.MessageReceived{SenderChatID: "chat-42", Text: "hello"}
	delivered := make(chan string, 2)
	sink1.EXPECT().Consume(gomock.Any(), evt).DoAndReturn(func(context.Context, event.DomainEvent) error {
		delivered <- "sink1"
		return nil
	})
	sink2.EXPECT().Consume(gomock.Any(), evt).DoAndReturn(func(context.Context, event.DomainEvent) error {
		delivered <- "sink2"
		return nil
	})

	events := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(testLogger(), events).Add(sink1, sink2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- evt

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case name := <-delivered:
			seen[name] = true
		case <-time.After(500 * time.Millisecond):
			req.Fail("event was not delivered to every sink")
		}
	}
	req.True(seen["sink1"])
	req.True(seen["sink2"])
}

func TestEventFanout_SinkFailureDoesNotBlockOthers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mocks.NewMockEventSink(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)

	evt := event.MessageReceived{SenderChatID: "chat-42", Text: "hello"}
	delivered := make(chan struct{}, 1)
	failing.EXPECT().Consume(gomock.Any(), evt).Return(fmt.Errorf("sink exploded"))
	healthy.EXPECT().Consume(gomock.Any(), evt).DoAndReturn(func(context.Context, event.DomainEvent) error {
		delivered <- struct{}{}
		return nil
	})

	events := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(testLogger(), events).Add(failing, healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- evt

	select {
	case <-delivered:
	case <-time.After(500 * time.Millisecond):
		req.Fail("healthy sink never received the event")
	}
}
