package rsvp

import (
	"context"
	"regexp"
	"strings"

	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/pkg/logger"
)

// Conservative contact validation: local part and domain at least 2
// characters, TLD at least 2 alphabetic characters, case-insensitive.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]{2,}@[A-Za-z0-9.-]{2,}\.[A-Za-z]{2,}$`)

var nonDigits = regexp.MustCompile(`\D`)

// Service implements the guest lookup and RSVP submission workflows.
// It is stateless; all public methods are safe for concurrent use if the
// underlying repository is concurrency-safe.
type Service struct {
	repo Repository

	// sentinel is the reserved diagnostic lookup value. When the trimmed,
	// case-folded query equals it, Lookup returns a canned synthetic party
	// without touching the store. Empty disables the short-circuit.
	sentinel string
}

// NewService creates an RSVP service backed by the given repository.
func NewService(repo Repository, sentinel string) *Service {
	return &Service{repo: repo, sentinel: strings.ToLower(strings.TrimSpace(sentinel))}
}

// Lookup resolves a visitor's self-reported name to their party, including
// the ordered guest list and the has_responded flag. Read-only.
func (s *Service) Lookup(ctx context.Context, name string) (*domain.Party, error) {
	// Collapse interior whitespace so "sarah   fortune" matches.
	query := strings.Join(strings.Fields(name), " ")
	if len([]rune(query)) < 2 {
		return nil, ErrQueryTooShort
	}

	if s.sentinel != "" && strings.ToLower(query) == s.sentinel {
		return syntheticParty(), nil
	}

	party, err := s.repo.SearchParty(ctx, query)
	if err != nil {
		return nil, err
	}
	return party, nil
}

// syntheticParty is the canned two-guest party returned for the diagnostic
// sentinel. Negative ids guarantee it can never collide with store rows,
// and submissions against it fail party lookup by construction.
func syntheticParty() *domain.Party {
	return &domain.Party{
		ID:        -1,
		PartyName: "Preview Party",
		Status:    domain.PartyInvited,
		Guests: []domain.Guest{
			{ID: -1, PartyID: -1, Name: "Preview Guest One"},
			{ID: -2, PartyID: -1, Name: "Preview Guest Two", IsPlusOne: true},
		},
	}
}

// Submit validates and persists a full RSVP for one party. Validation is
// fail-fast in a fixed order so the caller always sees the first problem;
// no store mutation happens for an invalid payload. Resubmission is not an
// error: answers are overwritten wholesale.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if len(sub.Guests) == 0 {
		return ErrNoGuests
	}
	if !emailPattern.MatchString(strings.TrimSpace(sub.Email)) {
		return ErrInvalidEmail
	}
	digits := nonDigits.ReplaceAllString(sub.Phone, "")
	if len(digits) < 10 || len(digits) > 15 {
		return ErrInvalidPhone
	}
	if !sub.Consent {
		return ErrConsentRequired
	}
	for _, g := range sub.Guests {
		if g.IsPlusOne && g.IsAttending && strings.TrimSpace(g.Name) == "" {
			return ErrPlusOneName
		}
	}

	sub.Email = strings.TrimSpace(sub.Email)
	if err := s.repo.SubmitResponse(ctx, sub); err != nil {
		return err
	}

	logger.Info("rsvp recorded",
		"party_id", sub.PartyID,
		"email", sub.Email,
		"guests", len(sub.Guests))
	return nil
}
