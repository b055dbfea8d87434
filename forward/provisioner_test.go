package forward

import (
	"context"
	"sync"
	"testing"
	"time"

	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/platform"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = domain.User{ChatID: "chat-1", PlatformID: "p-1", Type: domain.EntityTypeNative, DisplayName: "Alice"}

func Test_Provisioner_Rejects_User_Without_ChatID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	repository := mocks.NewMockIConversationRepository(ctrl)

	provisioner := NewProvisioner(client, repository, testLogger())
	_, err := provisioner.GetOrCreate(context.Background(), domain.User{DisplayName: "ghost"})

	req.ErrorIs(err, errors.ErrNoChatID)
}

func Test_Provisioner_Cache_Hit_Skips_Creation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	repository := mocks.NewMockIConversationRepository(ctrl)

	repository.EXPECT().Get("chat-1").Return("conv-cached", nil)

	provisioner := NewProvisioner(client, repository, testLogger())
	conversationID, err := provisioner.GetOrCreate(context.Background(), alice)

	req.NoError(err)
	req.Equal("conv-cached", conversationID)
}

func Test_Provisioner_Cache_Miss_Creates_And_Writes_Through(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	repository := mocks.NewMockIConversationRepository(ctrl)

	repository.EXPECT().Get("chat-1").Return("", errors.ErrConversationNotCached)
	client.EXPECT().NewClientRequestID().Return("req-1")
	client.EXPECT().
		CreateConversation(gomock.Any(), platform.CreateConversationRequest{
			Type:              platform.ConversationTypeOneToOne,
			InviteePlatformID: "p-1",
			Name:              "Alice",
			ClientRequestID:   "req-1",
		}).
		Return(platform.CreateConversationResponse{ConversationID: "conv-new"}, nil)
	repository.EXPECT().Put("chat-1", "conv-new").Return(nil)

	provisioner := NewProvisioner(client, repository, testLogger())
	conversationID, err := provisioner.GetOrCreate(context.Background(), alice)

	req.NoError(err)
	req.Equal("conv-new", conversationID)
}

func Test_Provisioner_Empty_Response_Is_Unavailable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	repository := mocks.NewMockIConversationRepository(ctrl)

	repository.EXPECT().Get("chat-1").Return("", errors.ErrConversationNotCached)
	client.EXPECT().NewClientRequestID().Return("req-1")
	client.EXPECT().
		CreateConversation(gomock.Any(), gomock.Any()).
		Return(platform.CreateConversationResponse{}, nil)

	provisioner := NewProvisioner(client, repository, testLogger())
	_, err := provisioner.GetOrCreate(context.Background(), alice)

	req.ErrorIs(err, errors.ErrConversationUnavailable)
}

func Test_Provisioner_SingleFlight_Per_ChatID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockIClient(ctrl)
	repository := mocks.NewMockIConversationRepository(ctrl)

	repository.EXPECT().Get("chat-1").Return("", errors.ErrConversationNotCached).Times(1)
	client.EXPECT().NewClientRequestID().Return("req-1").Times(1)
	client.EXPECT().
		CreateConversation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, platform.CreateConversationRequest) (platform.CreateConversationResponse, error) {
			// Hold the flight open long enough for the second caller to join it
			time.Sleep(50 * time.Millisecond)
			return platform.CreateConversationResponse{ConversationID: "conv-new"}, nil
		}).
		Times(1)
	repository.EXPECT().Put("chat-1", "conv-new").Return(nil).Times(1)

	provisioner := NewProvisioner(client, repository, testLogger())

	var wg sync.WaitGroup
	results := make([]string, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conversationID, err := provisioner.GetOrCreate(context.Background(), alice)
			req.NoError(err)
			results[i] = conversationID
		}(i)
	}
	wg.Wait()

	req.Equal("conv-new", results[0])
	req.Equal("conv-new", results[1])
}
