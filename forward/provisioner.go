package forward

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/platform"
	"chat-relay/repositories"
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// Provisioner finds or creates the 1-to-1 conversation for a user,
// consulting and populating the durable conversation cache. A cached id
// is trusted unconditionally; there is no liveness check against the
// platform.
type Provisioner struct {
	platform   platform.IClient
	repository repositories.IConversationRepository
	log        *slog.Logger
	group      singleflight.Group
}

func NewProvisioner(client platform.IClient, repository repositories.IConversationRepository, log *slog.Logger) *Provisioner {
	return &Provisioner{platform: client, repository: repository, log: log}
}

// GetOrCreate returns the conversation id for user. Calls for the same
// chatID are single-flighted: concurrent events for a not-yet-cached
// receiver share one create request instead of racing to provision
// duplicate conversations.
func (p *Provisioner) GetOrCreate(ctx context.Context, user domain.User) (string, error) {
	if user.ChatID == "" {
		p.log.Warn("Cannot provision a conversation without a chat id", "name", user.DisplayName)
		return "", errors.ErrNoChatID
	}
	id, err, _ := p.group.Do(user.ChatID, func() (any, error) {
		return p.getOrCreate(ctx, user)
	})
	if err != nil {
		return "", err
	}
	return id.(string), nil
}

func (p *Provisioner) getOrCreate(ctx context.Context, user domain.User) (string, error) {
	conversationID, err := p.repository.Get(user.ChatID)
	switch {
	case err == nil:
		p.log.Info("Conversation loaded from cache", "chat_id", user.ChatID, "conversation_id", conversationID)
		return conversationID, nil
	case err != errors.ErrConversationNotCached:
		// Unreadable entry: provision a fresh conversation rather than
		// failing the send.
		p.log.Warn("Conversation cache read failed", "chat_id", user.ChatID, "error", err)
	default:
		p.log.Info("Conversation not cached, creating a new one", "chat_id", user.ChatID)
	}

	response, err := p.platform.CreateConversation(ctx, platform.CreateConversationRequest{
		Type:              platform.ConversationTypeOneToOne,
		InviteePlatformID: user.PlatformID,
		Name:              user.DisplayName,
		ClientRequestID:   p.platform.NewClientRequestID(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrConversationUnavailable, err)
	}
	if response.ConversationID == "" {
		return "", errors.ErrConversationUnavailable
	}

	// The cache write must be durable before the id is used.
	if err = p.repository.Put(user.ChatID, response.ConversationID); err != nil {
		return "", fmt.Errorf("cache new conversation %s: %w", response.ConversationID, err)
	}
	p.log.Info("New 1to1 conversation created", "chat_id", user.ChatID, "conversation_id", response.ConversationID)
	return response.ConversationID, nil
}
