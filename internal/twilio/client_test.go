package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/theestifanos/wedding-api/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.TwilioConfig{
		AccountSID:     "AC0000000000000000000000000000test",
		AuthToken:      "secret-token",
		FromNumber:     "+15005550006",
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
	})
}

func TestSendSMS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/2010-04-01/Accounts/AC0000000000000000000000000000test/Messages.json"
		if r.Method != http.MethodPost || r.URL.Path != wantPath {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC0000000000000000000000000000test" || pass != "secret-token" {
			t.Errorf("unexpected basic auth: %q %q %v", user, pass, ok)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("To"); got != "+14155552671" {
			t.Errorf("unexpected To: %q", got)
		}
		if got := r.PostForm.Get("From"); got != "+15005550006" {
			t.Errorf("unexpected From: %q", got)
		}
		if got := r.PostForm.Get("Body"); got == "" {
			t.Error("expected a message body")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM1234","status":"queued"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.SendSMS(context.Background(), "+14155552671", "Save the date!")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestSendSMSError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number.","status":400}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.SendSMS(context.Background(), "not-a-number", "hi")
	if err == nil {
		t.Fatal("expected error")
	}
}
