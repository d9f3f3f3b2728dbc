package templates

import (
	"strings"
	"testing"

	"github.com/theestifanos/wedding-api/internal/domain"
)

func testVars() Vars {
	return Vars{
		GuestName:  "Sarah",
		CoupleName: "Yonatan & Saron",
		WebsiteURL: "https://www.theestifanos.com",
		Venue:      "Addis Ababa, Ethiopia",
		Date:       "January 10, 2026",
	}
}

func TestRenderSaveTheDate(t *testing.T) {
	e := NewEngine()
	out, err := e.Render(domain.TemplateSaveTheDate, testVars())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Dear Sarah", "Yonatan &amp; Saron", "January 10, 2026", "https://www.theestifanos.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderFormalInviteLinksToRSVP(t *testing.T) {
	e := NewEngine()
	out, err := e.Render(domain.TemplateFormalInvite, testVars())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "https://www.theestifanos.com/rsvp") {
		t.Error("formal invite should link to the RSVP page")
	}
}

func TestRenderGeneric(t *testing.T) {
	e := NewEngine()
	vars := testVars()
	vars.Heading = "A Note From Us"
	vars.Body = "Shuttle details are on the website."
	vars.CTAText = "See Logistics"
	out, err := e.Render(domain.TemplateGeneric, vars)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"A Note From Us", "Shuttle details", "See Logistics"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderMissingGuestNameFallsBack(t *testing.T) {
	e := NewEngine()
	vars := testVars()
	vars.GuestName = ""
	out, err := e.Render(domain.TemplateSaveTheDate, vars)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Dear Friend") {
		t.Error("expected fallback greeting for unnamed guest")
	}
}

func TestRenderEscapesGuestName(t *testing.T) {
	e := NewEngine()
	vars := testVars()
	vars.GuestName = "<script>x</script>"
	out, err := e.Render(domain.TemplateSaveTheDate, vars)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Error("guest name must be HTML escaped")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	e := NewEngine()
	if _, err := e.Render(domain.EmailTemplate("missing"), testVars()); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRenderAllRegisteredTemplates(t *testing.T) {
	e := NewEngine()
	for name := range sources {
		if _, err := e.Render(name, testVars()); err != nil {
			t.Errorf("template %s: %v", name, err)
		}
	}
}
