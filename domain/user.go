// Package domain contains core concepts of the forwarding relay.
// This file defines resolved User entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// EntityType distinguishes accounts native to the platform from
// off-network placeholders created for phone/email receivers.
type EntityType int

const (
	EntityTypeUnknown EntityType = iota
	EntityTypeNative
	EntityTypeOffNetwork
)

func (t EntityType) String() string {
	switch t {
	case EntityTypeNative:
		return "native"
	case EntityTypeOffNetwork:
		return "off-network"
	default:
		return "unknown"
	}
}

// User is a resolved receiver. ChatID routes messages, PlatformID is the
// identity-graph key needed to create conversations. Immutable once
// created by the resolver.
type User struct {
	ChatID      string
	PlatformID  string
	Type        EntityType
	DisplayName string
}
