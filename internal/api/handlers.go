package api

import (
	"database/sql"

	"github.com/theestifanos/wedding-api/internal/config"
	"github.com/theestifanos/wedding-api/internal/service/notify"
	"github.com/theestifanos/wedding-api/internal/service/rsvp"
)

// Error codes returned in the JSON error envelope. Clients branch on
// these rather than parsing messages.
const (
	CodeMissingParameters  = "MISSING_PARAMETERS"
	CodeUnknownCampaign    = "UNKNOWN_CAMPAIGN"
	CodePartyNotFound      = "PARTY_NOT_FOUND"
	CodeNoContactInfo      = "NO_CONTACT_INFO"
	CodeAllChannelsFailed  = "ALL_CHANNELS_FAILED"
	CodeServerMisconfig    = "SERVER_MISCONFIGURED"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	rsvp   *rsvp.Service
	notify *notify.Service
	site   config.SiteConfig
	db     *sql.DB
}

// NewHandlers creates a new Handlers instance. db may be nil in tests;
// the health check then skips the store probe.
func NewHandlers(rsvpSvc *rsvp.Service, notifySvc *notify.Service, site config.SiteConfig, db *sql.DB) *Handlers {
	return &Handlers{
		rsvp:   rsvpSvc,
		notify: notifySvc,
		site:   site,
		db:     db,
	}
}
