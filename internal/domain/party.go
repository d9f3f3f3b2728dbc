package domain

import (
	"strings"
	"time"
)

// PartyStatus enumerates the lifecycle states of an invitation party.
// Transitions are monotonic: not_contacted -> invited -> responded.
type PartyStatus string

const (
	PartyNotContacted PartyStatus = "not_contacted"
	PartyInvited      PartyStatus = "invited"
	PartyResponded    PartyStatus = "responded"
)

// Party represents one invitation unit (a household or individual) with
// its ordered guest list and response state.
type Party struct {
	ID           int64       `json:"id" db:"id"`
	PartyName    string      `json:"party_name" db:"party_name"`
	Status       PartyStatus `json:"status" db:"status"`
	Email        string      `json:"email,omitempty" db:"email"`
	Phone        string      `json:"phone,omitempty" db:"phone"`
	Message      string      `json:"message,omitempty" db:"message"`
	HasResponded bool        `json:"has_responded" db:"has_responded"`

	// Guests in original invitation order (populated by queries).
	Guests []Guest `json:"guests"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasEmail reports whether the party has a usable email contact.
func (p *Party) HasEmail() bool { return strings.TrimSpace(p.Email) != "" }

// HasPhone reports whether the party has a usable phone contact.
func (p *Party) HasPhone() bool { return strings.TrimSpace(p.Phone) != "" }

// Guest is one named attendee slot under a Party. Plus-one slots are
// pre-provisioned rows whose name stays empty until the inviting guest
// fills it in during RSVP.
type Guest struct {
	ID          int64  `json:"id" db:"id"`
	PartyID     int64  `json:"party_id" db:"party_id"`
	Name        string `json:"name" db:"name"`
	IsAttending bool   `json:"is_attending" db:"is_attending"`
	IsPlusOne   bool   `json:"is_plus_one" db:"is_plus_one"`
}

// Channel is one delivery medium for a campaign.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// CampaignLog is an append-only audit record of one successful delivery.
// Failures are never persisted; dispatching twice yields two rows.
type CampaignLog struct {
	ID         string     `json:"id" db:"id"`
	PartyID    int64      `json:"party_id" db:"party_id"`
	CampaignID CampaignID `json:"campaign_id" db:"campaign_id"`
	Channel    Channel    `json:"channel" db:"channel"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
