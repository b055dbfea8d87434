//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_platform.go -package=mocks
package platform

import (
	"bytes"
	"chat-relay/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type IClient interface {
	Self(ctx context.Context) (Identity, error)
	LookupEntities(ctx context.Context, specs []domain.LookupSpec) ([]EntityResult, error)
	CreateConversation(ctx context.Context, request CreateConversationRequest) (CreateConversationResponse, error)
	SendMessage(ctx context.Context, request SendMessageRequest) (SendMessageResponse, error)
	PollEvents(ctx context.Context, cursor string) (EventBatch, error)
	NewClientRequestID() string
}

// Client speaks the platform's JSON API over HTTP. Every call is bounded
// by the underlying http.Client timeout in addition to the caller context.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Self returns the bot's own identity. Fetched once at startup and used
// to filter self-originated events and self-targeted receivers.
func (c *Client) Self(ctx context.Context) (Identity, error) {
	var identity Identity
	err := c.post(ctx, "/clients/getselfinfo", struct{}{}, &identity)
	return identity, err
}

// LookupEntities resolves a batch of lookup specs. Results come back in
// spec order, one EntityResult per spec.
func (c *Client) LookupEntities(ctx context.Context, specs []domain.LookupSpec) ([]EntityResult, error) {
	var response lookupResponse
	if err := c.post(ctx, "/contacts/getentitybyid", lookupRequest{Specs: specs}, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

func (c *Client) CreateConversation(ctx context.Context, request CreateConversationRequest) (CreateConversationResponse, error) {
	var response CreateConversationResponse
	err := c.post(ctx, "/conversations/createconversation", request, &response)
	return response, err
}

func (c *Client) SendMessage(ctx context.Context, request SendMessageRequest) (SendMessageResponse, error) {
	var response SendMessageResponse
	err := c.post(ctx, "/conversations/sendchatmessage", request, &response)
	return response, err
}

// PollEvents long-polls the inbound message stream. An empty cursor
// starts from the current head.
func (c *Client) PollEvents(ctx context.Context, cursor string) (EventBatch, error) {
	var batch EventBatch
	err := c.post(ctx, "/events/receive", pollRequest{Cursor: cursor}, &batch)
	return batch, err
}

// NewClientRequestID generates the idempotency token attached to
// conversation-create and send-message requests.
func (c *Client) NewClientRequestID() string {
	return uuid.New().String()
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("platform: marshal %s request: %w", path, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("platform: build %s request: %w", path, err)
	}
	request.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("platform: %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		// Truncated body snippet, enough to diagnose without flooding logs
		snippet, _ := io.ReadAll(io.LimitReader(response.Body, 256))
		return fmt.Errorf("platform: %s returned HTTP %d: %s", path, response.StatusCode, string(snippet))
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("platform: decode %s response: %w", path, err)
	}
	return nil
}
