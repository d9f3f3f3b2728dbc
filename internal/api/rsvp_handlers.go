package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/pkg/httputil"
	"github.com/theestifanos/wedding-api/internal/service/rsvp"
)

type searchRequest struct {
	Name string `json:"name"`
}

type guestPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsAttending bool   `json:"is_attending"`
	IsPlusOne   bool   `json:"is_plus_one"`
}

type partyPayload struct {
	ID           int64          `json:"id"`
	PartyName    string         `json:"party_name"`
	Status       string         `json:"status"`
	HasResponded bool           `json:"has_responded"`
	Guests       []guestPayload `json:"guests"`
}

func toPartyPayload(p *domain.Party) partyPayload {
	out := partyPayload{
		ID:           p.ID,
		PartyName:    p.PartyName,
		Status:       string(p.Status),
		HasResponded: p.HasResponded,
		Guests:       make([]guestPayload, 0, len(p.Guests)),
	}
	for _, g := range p.Guests {
		out.Guests = append(out.Guests, guestPayload{
			ID:          g.ID,
			Name:        g.Name,
			IsAttending: g.IsAttending,
			IsPlusOne:   g.IsPlusOne,
		})
	}
	return out
}

// SearchParty resolves a visitor's name to their invitation party.
func (h *Handlers) SearchParty(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httputil.ErrorCode(w, http.StatusBadRequest, CodeMissingParameters, "name is required")
		return
	}

	party, err := h.rsvp.Lookup(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, rsvp.ErrQueryTooShort):
			httputil.ErrorCode(w, http.StatusBadRequest, CodeValidation, err.Error())
		case errors.Is(err, rsvp.ErrPartyNotFound):
			httputil.ErrorCode(w, http.StatusNotFound, CodePartyNotFound, err.Error())
		default:
			httputil.InternalError(w, err)
		}
		return
	}

	httputil.OK(w, toPartyPayload(party))
}

type submitRequest struct {
	PartyID int64          `json:"party_id"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Message string         `json:"message"`
	Consent bool           `json:"consent"`
	Guests  []guestPayload `json:"guests"`
}

// SubmitRSVP records a party's full response.
func (h *Handlers) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.PartyID == 0 {
		httputil.ErrorCode(w, http.StatusBadRequest, CodeMissingParameters, "party_id is required")
		return
	}

	sub := rsvp.Submission{
		PartyID: req.PartyID,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Consent: req.Consent,
	}
	for _, g := range req.Guests {
		sub.Guests = append(sub.Guests, rsvp.GuestDecision{
			ID:          g.ID,
			Name:        g.Name,
			IsAttending: g.IsAttending,
			IsPlusOne:   g.IsPlusOne,
		})
	}

	if err := h.rsvp.Submit(r.Context(), sub); err != nil {
		switch {
		case rsvp.IsValidation(err):
			httputil.ErrorCode(w, http.StatusBadRequest, CodeValidation, err.Error())
		case errors.Is(err, rsvp.ErrPartyNotFound):
			httputil.ErrorCode(w, http.StatusNotFound, CodePartyNotFound, err.Error())
		default:
			httputil.InternalError(w, err)
		}
		return
	}

	httputil.OK(w, map[string]bool{"success": true})
}
