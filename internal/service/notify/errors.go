package notify

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the dispatch flow.
var (
	ErrUnknownCampaign = errors.New("unknown campaign")
	ErrPartyNotFound   = errors.New("party not found")
	ErrNoContactInfo   = errors.New("no contact information available for this party")
)

// AllChannelsFailedError reports a dispatch where no channel delivered.
// It carries the per-channel reasons and any skip notes for diagnosis.
type AllChannelsFailedError struct {
	Reasons []string
	Skipped []string
}

func (e *AllChannelsFailedError) Error() string {
	if len(e.Reasons) == 0 {
		return "failed to send via any channel"
	}
	return fmt.Sprintf("failed to send via any channel: %s", strings.Join(e.Reasons, "; "))
}

// Misconfigured reports whether every failure reason was a missing
// provider configuration rather than a delivery error.
func (e *AllChannelsFailedError) Misconfigured() bool {
	if len(e.Reasons) == 0 {
		return false
	}
	for _, r := range e.Reasons {
		if !strings.Contains(r, "not configured") {
			return false
		}
	}
	return true
}
