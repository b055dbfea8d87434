//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=../mocks/mock_dispatcher.go -package=mocks
package forward

import (
	"chat-relay/domain"
	"chat-relay/platform"
	"context"
	"fmt"
	"log/slog"
)

type IDispatcher interface {
	Send(ctx context.Context, message string)
}

// Dispatcher fans one outbound message out to every resolved receiver.
// Receivers are processed independently in list order; provisioning or
// send failures are logged per receiver and never stop the loop. The
// caller observes outcomes only through logs, there is no aggregate
// result.
type Dispatcher struct {
	platform    platform.IClient
	resolver    *Resolver
	provisioner *Provisioner
	log         *slog.Logger
}

func NewDispatcher(client platform.IClient, resolver *Resolver, provisioner *Provisioner, log *slog.Logger) *Dispatcher {
	return &Dispatcher{platform: client, resolver: resolver, provisioner: provisioner, log: log}
}

func (d *Dispatcher) Send(ctx context.Context, message string) {
	for _, user := range d.resolver.Users(ctx) {
		d.log.Info("Forwarding to receiver",
			"chat_id", user.ChatID, "name", user.DisplayName, "type", user.Type.String())

		conversationID, err := d.provisioner.GetOrCreate(ctx, user)
		if err != nil {
			d.log.Warn("Receiver skipped", "name", user.DisplayName, "error", err)
			continue
		}

		response, err := d.platform.SendMessage(ctx, platform.SendMessageRequest{
			ConversationID:  conversationID,
			ClientRequestID: d.platform.NewClientRequestID(),
			DeliveryMedium:  deliveryMediumFor(user.Type),
			Segments:        []platform.Segment{{Type: platform.SegmentTypeText, Text: message}},
		})
		if err != nil {
			d.log.Warn("Message send failed", "name", user.DisplayName, "error", err)
			continue
		}
		d.log.Info("Message sent", "name", user.DisplayName, "status", responseStatus(response))
	}
}

// Native accounts get standard in-platform delivery, off-network
// placeholders go through the carrier bridge.
func deliveryMediumFor(t domain.EntityType) platform.DeliveryMedium {
	if t == domain.EntityTypeNative {
		return platform.DeliveryMediumNative
	}
	return platform.DeliveryMediumCarrier
}

func responseStatus(response platform.SendMessageResponse) string {
	if response.Status != platform.StatusOK {
		return fmt.Sprintf("request failed with status %d: %q", response.Status, response.ErrorDescription)
	}
	return "success"
}
