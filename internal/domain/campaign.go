package domain

// CampaignID identifies one of the statically registered notification
// campaigns. The set is closed: adding a campaign means adding a constant
// here and extending the exhaustive switches below.
type CampaignID string

const (
	CampaignSaveTheDate      CampaignID = "save-the-date"
	CampaignFormalInvitation CampaignID = "formal-invitation"
	CampaignRSVPReminder     CampaignID = "rsvp-reminder"
	CampaignLogisticsUpdate  CampaignID = "logistics-update"
	CampaignDayOfAlert       CampaignID = "day-of-alert"
	CampaignThankYou         CampaignID = "thank-you"
)

// ChannelPriority hints which channel a campaign favors.
type ChannelPriority string

const (
	PriorityEmail ChannelPriority = "email"
	PrioritySMS   ChannelPriority = "sms"
	PriorityBoth  ChannelPriority = "both"
)

// Campaign is a predefined notification template bundle. The registry is
// immutable configuration compiled into the binary.
type Campaign struct {
	ID       CampaignID      `json:"id"`
	Label    string          `json:"label"`
	SMSBody  string          `json:"sms_body"`
	Priority ChannelPriority `json:"priority"`
}

var campaigns = []Campaign{
	{
		ID:       CampaignSaveTheDate,
		Label:    "Save the Date",
		SMSBody:  "Save the Date for Yonatan & Saron! Sept 4, 2026. Details at theestifanos.com",
		Priority: PriorityBoth,
	},
	{
		ID:       CampaignFormalInvitation,
		Label:    "Formal Invitation",
		SMSBody:  "You are invited to Yonatan & Saron's wedding! RSVP at theestifanos.com",
		Priority: PriorityBoth,
	},
	{
		ID:       CampaignRSVPReminder,
		Label:    "RSVP Deadline Reminder",
		SMSBody:  "Reminder: Please RSVP for Yonatan & Saron's wedding by June 1st at theestifanos.com",
		Priority: PriorityBoth,
	},
	{
		ID:       CampaignLogisticsUpdate,
		Label:    "Wedding Week Logistics",
		SMSBody:  "Wedding logistics update! See parking, hotel & schedule details at theestifanos.com",
		Priority: PriorityBoth,
	},
	{
		ID:       CampaignDayOfAlert,
		Label:    "Day-of Updates",
		SMSBody:  "Wedding day update: Shuttle leaving in 10 mins from hotel lobby!",
		Priority: PrioritySMS,
	},
	{
		ID:       CampaignThankYou,
		Label:    "Thank You",
		SMSBody:  "Thank you for celebrating with us! View photos at theestifanos.com/photos",
		Priority: PriorityEmail,
	},
}

// Campaigns returns the full registry in declaration order.
func Campaigns() []Campaign {
	out := make([]Campaign, len(campaigns))
	copy(out, campaigns)
	return out
}

// LookupCampaign resolves a raw identifier against the registry.
func LookupCampaign(id string) (Campaign, bool) {
	for _, c := range campaigns {
		if c.ID == CampaignID(id) {
			return c, true
		}
	}
	return Campaign{}, false
}

// Valid reports whether the identifier is in the registry.
func (id CampaignID) Valid() bool {
	_, ok := LookupCampaign(string(id))
	return ok
}

// MarksInvited reports whether a successful delivery of this campaign
// advances the party status to invited. Exactly two lifecycle campaigns
// do; everything else leaves the party status alone.
func (id CampaignID) MarksInvited() bool {
	return id == CampaignSaveTheDate || id == CampaignFormalInvitation
}

// EmailTemplate selects the rendering template for a campaign email.
type EmailTemplate string

const (
	TemplateSaveTheDate      EmailTemplate = "save_the_date"
	TemplatePhotoSaveTheDate EmailTemplate = "photo_save_the_date"
	TemplateFormalInvite     EmailTemplate = "formal_invite"
	TemplateGeneric          EmailTemplate = "generic"
)

// EmailSpec is the resolved email composition for one campaign: a fixed
// subject plus either a dedicated template or the generic template with
// its heading/body/call-to-action parameters.
type EmailSpec struct {
	Subject  string
	Template EmailTemplate
	Heading  string
	Body     string
	CTAText  string
}

// EmailSpec resolves the campaign's email composition. The switch is
// exhaustive over the registry; an unregistered id yields ok=false.
func (id CampaignID) EmailSpec() (EmailSpec, bool) {
	switch id {
	case CampaignSaveTheDate:
		return EmailSpec{
			Subject:  "Save the Date: Yonatan & Saron",
			Template: TemplateSaveTheDate,
		}, true
	case CampaignFormalInvitation:
		return EmailSpec{
			Subject:  "You're Invited: Yonatan & Saron's Wedding",
			Template: TemplateFormalInvite,
		}, true
	case CampaignRSVPReminder:
		return EmailSpec{
			Subject:  "Reminder: RSVP for Yonatan & Saron's Wedding",
			Template: TemplateGeneric,
			Heading:  "RSVP Reminder",
			Body:     "We kindly remind you to RSVP by June 1st. We hope you can join us for our special day!",
			CTAText:  "RSVP Now",
		}, true
	case CampaignLogisticsUpdate:
		return EmailSpec{
			Subject:  "Wedding Week Details - Yonatan & Saron",
			Template: TemplateGeneric,
			Heading:  "Wedding Week Logistics",
			Body:     "Here are the parking, hotel, and schedule details for the wedding weekend. We can't wait to see you!",
			CTAText:  "View Details",
		}, true
	case CampaignDayOfAlert:
		return EmailSpec{
			Subject:  "Wedding Day Update",
			Template: TemplateGeneric,
			Heading:  "Day-of Update",
			Body:     "Wedding day update: Shuttle leaving in 10 mins from hotel lobby!",
			CTAText:  "View Schedule",
		}, true
	case CampaignThankYou:
		return EmailSpec{
			Subject:  "Thank You! - Yonatan & Saron",
			Template: TemplateGeneric,
			Heading:  "Thank You!",
			Body:     "Thank you so much for celebrating with us. It meant the world to have you there. Photos from the day are now available!",
			CTAText:  "View Photos",
		}, true
	}
	return EmailSpec{}, false
}
