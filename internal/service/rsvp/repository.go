package rsvp

import (
	"context"

	"github.com/theestifanos/wedding-api/internal/domain"
)

// Repository defines the party-store contract for the RSVP flow.
// Implementations must be safe for concurrent use.
type Repository interface {
	// SearchParty performs a case-insensitive, whitespace-tolerant match of
	// the input against stored party and guest names. Returns the matched
	// party with its guests in original invitation order, or ErrPartyNotFound.
	SearchParty(ctx context.Context, name string) (*domain.Party, error)

	// SubmitResponse atomically persists the contact details and per-guest
	// decisions and marks the party as responded. Either every row updates
	// or none do. Returns ErrPartyNotFound if the party does not exist.
	SubmitResponse(ctx context.Context, sub Submission) error
}

// GuestDecision is one guest's answer in a submission.
type GuestDecision struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsAttending bool   `json:"is_attending"`
	IsPlusOne   bool   `json:"is_plus_one"`
}

// Submission holds a full, validated RSVP payload for one party.
type Submission struct {
	PartyID int64           `json:"party_id"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Message string          `json:"message"`
	Consent bool            `json:"consent"`
	Guests  []GuestDecision `json:"guests"`
}
