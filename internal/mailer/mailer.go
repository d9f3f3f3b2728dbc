// Package mailer composes campaign emails: it resolves a campaign's
// subject and template, renders the body, and hands the result to the
// Resend client.
package mailer

import (
	"context"
	"fmt"

	"github.com/theestifanos/wedding-api/internal/config"
	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/resend"
	"github.com/theestifanos/wedding-api/internal/templates"
)

// CampaignMailer sends campaign emails through Resend.
type CampaignMailer struct {
	client  *resend.Client
	engine  *templates.Engine
	wedding config.WeddingConfig
}

// New creates a campaign mailer.
func New(client *resend.Client, engine *templates.Engine, wedding config.WeddingConfig) *CampaignMailer {
	return &CampaignMailer{
		client:  client,
		engine:  engine,
		wedding: wedding,
	}
}

// SendCampaign renders and sends the campaign's email to one recipient.
func (m *CampaignMailer) SendCampaign(ctx context.Context, to, guestName string, id domain.CampaignID) error {
	spec, ok := id.EmailSpec()
	if !ok {
		return fmt.Errorf("no email composition for campaign %q", id)
	}

	body, err := m.engine.Render(spec.Template, templates.Vars{
		GuestName:  guestName,
		CoupleName: m.wedding.CoupleName,
		WebsiteURL: m.wedding.WebsiteURL,
		Venue:      m.wedding.Venue,
		Date:       m.wedding.Date,
		Heading:    spec.Heading,
		Body:       spec.Body,
		CTAText:    spec.CTAText,
	})
	if err != nil {
		return fmt.Errorf("rendering campaign %s: %w", id, err)
	}

	_, err = m.client.SendEmail(ctx, resend.SendRequest{
		To:      []string{to},
		Subject: spec.Subject,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("sending campaign %s: %w", id, err)
	}
	return nil
}
