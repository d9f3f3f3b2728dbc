package notify

import (
	"context"

	"github.com/theestifanos/wedding-api/internal/domain"
)

// Repository defines the party-store contract for dispatching.
// Implementations must be safe for concurrent use.
type Repository interface {
	// GetParty returns one party by id. Returns ErrPartyNotFound if it
	// does not exist.
	GetParty(ctx context.Context, id int64) (*domain.Party, error)

	// UpdatePartyStatus transitions a party's status.
	UpdatePartyStatus(ctx context.Context, id int64, status domain.PartyStatus) error

	// AppendCampaignLog inserts one audit row. Rows are append-only and
	// never deduplicated.
	AppendCampaignLog(ctx context.Context, entry *domain.CampaignLog) error
}

// EmailSender delivers one campaign email to a recipient. Implementations
// render the campaign's template themselves.
type EmailSender interface {
	SendCampaign(ctx context.Context, to, guestName string, id domain.CampaignID) error
}

// SMSSender delivers one text message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}
