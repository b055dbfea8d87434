package forward

import (
	"context"
	"testing"

	"chat-relay/domain"
	"chat-relay/mocks"
	"chat-relay/platform"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const selfChatID = "self-chat-id"

func Test_Resolver_Classifies_Identifiers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	ctx := context.Background()

	var seen []domain.LookupSpec
	client.EXPECT().
		LookupEntities(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, specs []domain.LookupSpec) ([]platform.EntityResult, error) {
			seen = append(seen, specs...)
			return nil, nil
		}).
		Times(3)

	resolver := NewResolver(client, testLogger(), selfChatID,
		[]string{"+15551234567", "alice@example.com", "raw-platform-id"})
	resolver.Users(ctx)

	req.Equal([]domain.LookupSpec{
		{Phone: "+15551234567", CreateOffNetwork: true},
		{Email: "alice@example.com", CreateOffNetwork: true},
		{PlatformID: "raw-platform-id"},
	}, seen)
}

func Test_Resolver_One_Identifier_May_Match_Many_Users(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)

	client.EXPECT().
		LookupEntities(gomock.Any(), gomock.Any()).
		Return([]platform.EntityResult{{Entities: []platform.Entity{
			{ChatID: "chat-1", PlatformID: "p-1", Type: "NATIVE", DisplayName: "Alice"},
			{ChatID: "chat-2", PlatformID: "p-2", Type: "OFF_NETWORK"},
		}}}, nil)

	resolver := NewResolver(client, testLogger(), selfChatID, []string{"+15551234567"})
	users := resolver.Users(context.Background())

	req.Len(users, 2)
	req.Equal(domain.User{ChatID: "chat-1", PlatformID: "p-1", Type: domain.EntityTypeNative, DisplayName: "Alice"}, users[0])
	// display name falls back to the configured identifier
	req.Equal(domain.User{ChatID: "chat-2", PlatformID: "p-2", Type: domain.EntityTypeOffNetwork, DisplayName: "+15551234567"}, users[1])
}

func Test_Resolver_Excludes_Self(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)

	client.EXPECT().
		LookupEntities(gomock.Any(), gomock.Any()).
		Return([]platform.EntityResult{{Entities: []platform.Entity{
			{ChatID: selfChatID, PlatformID: "p-self", Type: "NATIVE", DisplayName: "The Bot"},
			{ChatID: "chat-2", PlatformID: "p-2", Type: "NATIVE", DisplayName: "Bob"},
		}}}, nil)

	resolver := NewResolver(client, testLogger(), selfChatID, []string{"shared@example.com"})
	users := resolver.Users(context.Background())

	req.Len(users, 1)
	req.Equal("chat-2", users[0].ChatID)
}

func Test_Resolver_Skips_Failing_Identifier(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	ctx := context.Background()

	client.EXPECT().
		LookupEntities(gomock.Any(), []domain.LookupSpec{{Phone: "+1111", CreateOffNetwork: true}}).
		Return(nil, context.DeadlineExceeded)
	client.EXPECT().
		LookupEntities(gomock.Any(), []domain.LookupSpec{{Phone: "+2222", CreateOffNetwork: true}}).
		Return([]platform.EntityResult{{Entities: []platform.Entity{
			{ChatID: "chat-2", PlatformID: "p-2", Type: "NATIVE", DisplayName: "Bob"},
		}}}, nil)

	resolver := NewResolver(client, testLogger(), selfChatID, []string{"+1111", "+2222"})
	users := resolver.Users(ctx)

	req.Len(users, 1)
	req.Equal("chat-2", users[0].ChatID)
}

func Test_Resolver_Resolves_Once_Then_Caches(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	ctx := context.Background()

	client.EXPECT().
		LookupEntities(gomock.Any(), gomock.Any()).
		Return([]platform.EntityResult{{Entities: []platform.Entity{
			{ChatID: "chat-1", PlatformID: "p-1", Type: "NATIVE", DisplayName: "Alice"},
		}}}, nil).
		Times(1)

	resolver := NewResolver(client, testLogger(), selfChatID, []string{"+15551234567"})
	first := resolver.Users(ctx)
	second := resolver.Users(ctx)

	req.Equal(first, second)
}

func Test_Resolver_Retries_While_Empty(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	ctx := context.Background()

	// first attempt fails entirely, the list stays empty and the next
	// send triggers a fresh resolution
	client.EXPECT().
		LookupEntities(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)
	client.EXPECT().
		LookupEntities(gomock.Any(), gomock.Any()).
		Return([]platform.EntityResult{{Entities: []platform.Entity{
			{ChatID: "chat-1", PlatformID: "p-1", Type: "NATIVE", DisplayName: "Alice"},
		}}}, nil)

	resolver := NewResolver(client, testLogger(), selfChatID, []string{"+15551234567"})
	req.Empty(resolver.Users(ctx))
	req.Len(resolver.Users(ctx), 1)
}
