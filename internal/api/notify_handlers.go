package api

import (
	"errors"
	"net/http"

	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/pkg/httputil"
	"github.com/theestifanos/wedding-api/internal/service/notify"
)

// notifyRequest keeps the camelCase keys the admin tooling already sends.
type notifyRequest struct {
	PartyID    int64  `json:"partyId"`
	CampaignID string `json:"campaignId"`
}

// DispatchNotification fans one campaign out to one party.
func (h *Handlers) DispatchNotification(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.PartyID == 0 || req.CampaignID == "" {
		httputil.ErrorCode(w, http.StatusBadRequest, CodeMissingParameters, "partyId and campaignId are required")
		return
	}

	res, err := h.notify.Dispatch(r.Context(), req.PartyID, req.CampaignID)
	if err != nil {
		var allFailed *notify.AllChannelsFailedError
		switch {
		case errors.Is(err, notify.ErrUnknownCampaign):
			httputil.ErrorCode(w, http.StatusBadRequest, CodeUnknownCampaign, err.Error())
		case errors.Is(err, notify.ErrPartyNotFound):
			httputil.ErrorCode(w, http.StatusNotFound, CodePartyNotFound, err.Error())
		case errors.Is(err, notify.ErrNoContactInfo):
			httputil.ErrorCode(w, http.StatusBadRequest, CodeNoContactInfo, err.Error())
		case errors.As(err, &allFailed):
			if allFailed.Misconfigured() {
				httputil.ErrorCode(w, http.StatusInternalServerError, CodeServerMisconfig, "no notification provider is configured")
				return
			}
			httputil.JSON(w, http.StatusBadGateway, httputil.ErrorResponse{
				Error:   allFailed.Error(),
				Code:    CodeAllChannelsFailed,
				Details: res,
			})
		default:
			httputil.InternalError(w, err)
		}
		return
	}

	httputil.OK(w, res)
}

type campaignPayload struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Priority string `json:"priority"`
}

// ListCampaigns returns the closed campaign registry for the admin UI.
func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	all := domain.Campaigns()
	out := make([]campaignPayload, 0, len(all))
	for _, c := range all {
		out = append(out, campaignPayload{
			ID:       string(c.ID),
			Label:    c.Label,
			Priority: string(c.Priority),
		})
	}
	httputil.OK(w, out)
}
