package platform

import "chat-relay/domain"

// Response status codes carried in the send-message response header.
const (
	StatusOK = 1
)

// ConversationTypeOneToOne is the only conversation type the relay
// provisions; group conversations are unsupported.
const ConversationTypeOneToOne = "ONE_TO_ONE"

// DeliveryMedium selects the transport path for an outbound message.
type DeliveryMedium int

const (
	DeliveryMediumNative  DeliveryMedium = 1 // standard in-platform delivery
	DeliveryMediumCarrier DeliveryMedium = 2 // carrier-bridged, for off-network identities
)

// Identity is the bot's own account as reported by the platform.
type Identity struct {
	ChatID      string `json:"chat_id"`
	DisplayName string `json:"display_name"`
}

// Entity is one account matched by a lookup spec.
type Entity struct {
	ChatID      string `json:"chat_id"`
	PlatformID  string `json:"platform_id"`
	Type        string `json:"entity_type"`
	DisplayName string `json:"display_name"`
}

// Wire values for Entity.Type.
const (
	entityTypeNative     = "NATIVE"
	entityTypeOffNetwork = "OFF_NETWORK"
)

// EntityType maps the wire value to the domain enum.
func (e Entity) EntityType() domain.EntityType {
	switch e.Type {
	case entityTypeNative:
		return domain.EntityTypeNative
	case entityTypeOffNetwork:
		return domain.EntityTypeOffNetwork
	default:
		return domain.EntityTypeUnknown
	}
}

// EntityResult groups the entities matched by a single lookup spec.
// One spec may legitimately match zero, one or many accounts.
type EntityResult struct {
	Entities []Entity `json:"entity"`
}

type lookupRequest struct {
	Specs []domain.LookupSpec `json:"batch_lookup_spec"`
}

type lookupResponse struct {
	Results []EntityResult `json:"entity_result"`
}

type CreateConversationRequest struct {
	Type              string `json:"type"`
	InviteePlatformID string `json:"invitee_platform_id"`
	Name              string `json:"name"`
	ClientRequestID   string `json:"client_request_id"`
}

// CreateConversationResponse with an empty ConversationID means the
// platform could not provision the conversation; callers treat this as
// a business failure, not a transport error.
type CreateConversationResponse struct {
	ConversationID string `json:"conversation_id"`
}

type Segment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const SegmentTypeText = "TEXT"

type SendMessageRequest struct {
	ConversationID  string         `json:"conversation_id"`
	ClientRequestID string         `json:"client_request_id"`
	DeliveryMedium  DeliveryMedium `json:"delivery_medium"`
	Segments        []Segment      `json:"segments"`
}

type SendMessageResponse struct {
	Status           int    `json:"status"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// InboundMessage is one message pulled from the platform event stream.
type InboundMessage struct {
	SenderChatID string `json:"sender_chat_id"`
	SenderName   string `json:"sender_name"`
	Text         string `json:"text"`
	TimestampMs  int64  `json:"timestamp_ms"`
}

// EventBatch carries polled messages plus the cursor to resume from.
type EventBatch struct {
	Cursor   string           `json:"cursor"`
	Messages []InboundMessage `json:"messages"`
}

type pollRequest struct {
	Cursor string `json:"cursor,omitempty"`
}
