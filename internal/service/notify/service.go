package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/pkg/logger"
)

// defaultSendTimeout bounds one provider call so a stuck channel cannot
// stall the other channel's attempt or its audit logging.
const defaultSendTimeout = 20 * time.Second

// Service dispatches campaign notifications over email and SMS.
// Either sender may be nil when its provider credentials are absent;
// the affected channel then fails with a configuration reason instead
// of panicking, and the sibling channel is still attempted.
type Service struct {
	repo        Repository
	email       EmailSender
	sms         SMSSender
	sendTimeout time.Duration
}

// NewService creates a dispatcher. email and sms may be nil.
func NewService(repo Repository, email EmailSender, sms SMSSender) *Service {
	return &Service{
		repo:        repo,
		email:       email,
		sms:         sms,
		sendTimeout: defaultSendTimeout,
	}
}

// Result is the outcome of one dispatch call. A dispatch succeeds when at
// least one channel delivered; partial channel success is a valid terminal
// outcome, not an error state.
type Result struct {
	Success  bool             `json:"success"`
	Channels []domain.Channel `json:"channels"`
	Skipped  []string         `json:"skipped,omitempty"`
	Errors   []string         `json:"errors,omitempty"`
}

// Dispatch resolves the campaign, fans out over the party's usable
// channels best-effort, appends one CampaignLog row per delivered channel,
// and advances the party status for the two lifecycle campaigns.
func (s *Service) Dispatch(ctx context.Context, partyID int64, campaignID string) (*Result, error) {
	campaign, ok := domain.LookupCampaign(campaignID)
	if !ok {
		return nil, ErrUnknownCampaign
	}

	party, err := s.repo.GetParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if !party.HasEmail() && !party.HasPhone() {
		return nil, ErrNoContactInfo
	}

	res := &Result{Channels: []domain.Channel{}}

	// Best effort: attempt every available channel; failures are collected,
	// never propagated to the sibling channel.
	if party.HasEmail() {
		if err := s.sendEmail(ctx, party, campaign); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Email: %v", err))
		} else {
			res.Channels = append(res.Channels, domain.ChannelEmail)
			s.logDelivery(ctx, party.ID, campaign.ID, domain.ChannelEmail)
		}
	}

	if party.HasPhone() {
		if IsDomestic(party.Phone) {
			if err := s.sendSMS(ctx, party, campaign); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("SMS: %v", err))
			} else {
				res.Channels = append(res.Channels, domain.ChannelSMS)
				s.logDelivery(ctx, party.ID, campaign.ID, domain.ChannelSMS)
			}
		} else {
			logger.Info("sms skipped for international number",
				"party_id", party.ID,
				"phone", party.Phone,
				"campaign", string(campaign.ID))
			res.Skipped = append(res.Skipped, fmt.Sprintf("SMS skipped: international number (%s)", party.Phone))
		}
	}

	res.Success = len(res.Channels) > 0
	if !res.Success {
		return res, &AllChannelsFailedError{Reasons: res.Errors, Skipped: res.Skipped}
	}

	// Lifecycle side effect: the two invitation campaigns advance status.
	if campaign.ID.MarksInvited() {
		if err := s.repo.UpdatePartyStatus(ctx, party.ID, domain.PartyInvited); err != nil {
			logger.Warn("party status update failed after delivery",
				"party_id", party.ID, "error", err.Error())
		}
	}

	return res, nil
}

func (s *Service) sendEmail(ctx context.Context, party *domain.Party, campaign domain.Campaign) error {
	if s.email == nil {
		return fmt.Errorf("email not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	return s.email.SendCampaign(ctx, party.Email, party.PartyName, campaign.ID)
}

func (s *Service) sendSMS(ctx context.Context, party *domain.Party, campaign domain.Campaign) error {
	if s.sms == nil {
		return fmt.Errorf("sms not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	return s.sms.SendSMS(ctx, party.Phone, campaign.SMSBody)
}

// logDelivery appends the audit row for one delivered channel. Audit is
// best-effort: a failed insert does not undo the delivery.
func (s *Service) logDelivery(ctx context.Context, partyID int64, campaignID domain.CampaignID, ch domain.Channel) {
	entry := &domain.CampaignLog{
		ID:         uuid.New().String(),
		PartyID:    partyID,
		CampaignID: campaignID,
		Channel:    ch,
		Status:     "sent",
	}
	if err := s.repo.AppendCampaignLog(ctx, entry); err != nil {
		logger.Warn("campaign log append failed",
			"party_id", partyID,
			"campaign", string(campaignID),
			"channel", string(ch),
			"error", err.Error())
	}
}
