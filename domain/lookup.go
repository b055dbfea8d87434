package domain

import "strings"

// LookupSpec describes one entity lookup: exactly one of Phone, Email or
// PlatformID is set. CreateOffNetwork asks the platform to mint a
// placeholder identity when no account exists for the phone/email.
type LookupSpec struct {
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	PlatformID       string `json:"platform_id,omitempty"`
	CreateOffNetwork bool   `json:"create_offnetwork,omitempty"`
}

// LookupSpecFor classifies a raw configured identifier:
// leading '+' is a phone number, a '@' anywhere is an email address,
// anything else is already a platform-native id.
func LookupSpecFor(identifier string) LookupSpec {
	switch {
	case strings.HasPrefix(identifier, "+"):
		return LookupSpec{Phone: identifier, CreateOffNetwork: true}
	case strings.Contains(identifier, "@"):
		return LookupSpec{Email: identifier, CreateOffNetwork: true}
	default:
		return LookupSpec{PlatformID: identifier}
	}
}
