package forward

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/platform"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Resolver turns the configured receiver identifiers into platform
// users. Resolution happens lazily on the first send and the result is
// kept for the process lifetime: receiver identities are static
// configuration. Only an empty list is retried, so a transient lookup
// outage does not permanently disable the relay.
type Resolver struct {
	platform   platform.IClient
	log        *slog.Logger
	selfChatID string
	receivers  []string

	mu    sync.Mutex
	users []domain.User
}

func NewResolver(client platform.IClient, log *slog.Logger, selfChatID string, receivers []string) *Resolver {
	return &Resolver{platform: client, log: log, selfChatID: selfChatID, receivers: receivers}
}

// Users returns the resolved receiver list, resolving it on first use.
// Callers must treat the returned slice as immutable.
func (r *Resolver) Users(ctx context.Context) []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.users) == 0 {
		r.users = r.resolve(ctx)
	}
	return r.users
}

// resolve issues one batched lookup per identifier. A transport failure
// skips that identifier and continues with the rest; a single identifier
// may resolve to zero, one or many users. Users matching the bot itself
// are excluded here, once, rather than re-checked on every send.
func (r *Resolver) resolve(ctx context.Context) []domain.User {
	var users []domain.User
	for _, identifier := range r.receivers {
		results, err := r.platform.LookupEntities(ctx, []domain.LookupSpec{domain.LookupSpecFor(identifier)})
		if err != nil {
			r.log.Warn("Receiver lookup failed, skipping",
				"identifier", identifier,
				"error", fmt.Errorf("%w: %v", errors.ErrLookupFailed, err))
			continue
		}
		for _, result := range results {
			for _, entity := range result.Entities {
				if entity.ChatID == r.selfChatID {
					r.log.Warn("Message forward to myself is not supported", "identifier", identifier)
					continue
				}
				name := entity.DisplayName
				if name == "" {
					name = identifier
				}
				users = append(users, domain.User{
					ChatID:      entity.ChatID,
					PlatformID:  entity.PlatformID,
					Type:        entity.EntityType(),
					DisplayName: name,
				})
			}
		}
	}
	return users
}
