package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/theestifanos/wedding-api/internal/config"
	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/resend"
	"github.com/theestifanos/wedding-api/internal/templates"
)

func testWedding() config.WeddingConfig {
	return config.WeddingConfig{
		CoupleName: "Yonatan & Saron",
		WebsiteURL: "https://www.theestifanos.com",
		Venue:      "Addis Ababa, Ethiopia",
		Date:       "January 10, 2026",
	}
}

func TestSendCampaign(t *testing.T) {
	var got resend.SendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(resend.SendResponse{ID: "em_1"})
	}))
	defer srv.Close()

	client := resend.NewClient(config.ResendConfig{
		APIKey:         "re_test",
		BaseURL:        srv.URL,
		From:           "Yonatan & Saron <wedding@send.theestifanos.com>",
		TimeoutSeconds: 5,
	})
	m := New(client, templates.NewEngine(), testWedding())

	err := m.SendCampaign(context.Background(), "guest@example.com", "Sarah", domain.CampaignSaveTheDate)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if got.Subject != "Save the Date: Yonatan & Saron" {
		t.Errorf("unexpected subject: %q", got.Subject)
	}
	if len(got.To) != 1 || got.To[0] != "guest@example.com" {
		t.Errorf("unexpected recipients: %v", got.To)
	}
	if !strings.Contains(got.HTML, "Dear Sarah") {
		t.Error("body missing personalized greeting")
	}
}

func TestSendCampaignGenericTemplate(t *testing.T) {
	var got resend.SendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(resend.SendResponse{ID: "em_2"})
	}))
	defer srv.Close()

	client := resend.NewClient(config.ResendConfig{
		APIKey: "re_test", BaseURL: srv.URL, TimeoutSeconds: 5,
	})
	m := New(client, templates.NewEngine(), testWedding())

	if err := m.SendCampaign(context.Background(), "guest@example.com", "Ben", domain.CampaignThankYou); err != nil {
		t.Fatalf("send: %v", err)
	}
	spec, _ := domain.CampaignThankYou.EmailSpec()
	if got.Subject != spec.Subject {
		t.Errorf("unexpected subject: %q", got.Subject)
	}
	if !strings.Contains(got.HTML, spec.Heading) {
		t.Error("body missing campaign heading")
	}
}
