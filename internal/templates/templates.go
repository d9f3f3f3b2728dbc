// Package templates renders the wedding email bodies with the Liquid
// template language.
package templates

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/osteele/liquid"
	"github.com/theestifanos/wedding-api/internal/domain"
)

// Engine renders named email templates with caching.
type Engine struct {
	engine *liquid.Engine
	cache  sync.Map // map[domain.EmailTemplate]*liquid.Template
}

// NewEngine creates a template engine with the filters the wedding
// templates use.
func NewEngine() *Engine {
	e := &Engine{engine: liquid.NewEngine()}
	e.registerFilters()
	return e
}

func (e *Engine) registerFilters() {
	// Fallback value: {{ guest_name | default: "Friend" }}
	e.engine.RegisterFilter("default", func(value interface{}, defaultVal string) interface{} {
		if value == nil {
			return defaultVal
		}
		strVal := fmt.Sprintf("%v", value)
		if strVal == "" || strVal == "<nil>" {
			return defaultVal
		}
		return value
	})

	// HTML escape for guest-supplied values: {{ guest_name | escape }}
	e.engine.RegisterFilter("escape", func(s string) string {
		return html.EscapeString(s)
	})

	// Capitalize first letter: {{ name | capitalize }}
	e.engine.RegisterFilter("capitalize", func(s string) string {
		if len(s) == 0 {
			return s
		}
		return strings.ToUpper(string(s[0])) + strings.ToLower(s[1:])
	})
}

// Vars is the render context shared by all templates.
type Vars struct {
	GuestName  string
	CoupleName string
	WebsiteURL string
	Venue      string
	Date       string
	Heading    string
	Body       string
	CTAText    string
}

func (v Vars) context() map[string]interface{} {
	return map[string]interface{}{
		"guest_name":  v.GuestName,
		"couple_name": v.CoupleName,
		"website_url": v.WebsiteURL,
		"venue":       v.Venue,
		"date":        v.Date,
		"heading":     v.Heading,
		"body":        v.Body,
		"cta_text":    v.CTAText,
	}
}

// Render produces the HTML body for a named template.
func (e *Engine) Render(name domain.EmailTemplate, vars Vars) (string, error) {
	tpl, err := e.parse(name)
	if err != nil {
		return "", err
	}
	out, err := tpl.RenderString(vars.context())
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return out, nil
}

func (e *Engine) parse(name domain.EmailTemplate) (*liquid.Template, error) {
	if cached, ok := e.cache.Load(name); ok {
		return cached.(*liquid.Template), nil
	}

	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	tpl, err := e.engine.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	e.cache.Store(name, tpl)
	return tpl, nil
}

var sources = map[domain.EmailTemplate]string{
	domain.TemplateSaveTheDate:      saveTheDateHTML,
	domain.TemplatePhotoSaveTheDate: photoSaveTheDateHTML,
	domain.TemplateFormalInvite:     formalInviteHTML,
	domain.TemplateGeneric:          genericHTML,
}

const layoutTop = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#faf8f5;font-family:Georgia,'Times New Roman',serif;color:#3d3d3d;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:40px 16px;">
      <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border:1px solid #e8e2d8;">
        <tr><td style="padding:48px 48px 16px;text-align:center;">`

const layoutBottom = `        </td></tr>
        <tr><td style="padding:24px 48px 40px;text-align:center;">
          <p style="font-size:12px;color:#9c8358;letter-spacing:2px;text-transform:uppercase;">{{ couple_name }}</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`

const saveTheDateHTML = layoutTop + `
          <p style="font-size:13px;letter-spacing:4px;text-transform:uppercase;color:#9c8358;">Save the Date</p>
          <h1 style="font-size:32px;font-weight:normal;margin:16px 0;">{{ couple_name }}</h1>
          <p style="font-size:16px;line-height:1.7;">Dear {{ guest_name | escape | default: "Friend" }},</p>
          <p style="font-size:16px;line-height:1.7;">We're getting married! Please save the date and join us as we celebrate.</p>
          <p style="font-size:18px;margin:24px 0 8px;">{{ date }}</p>
          <p style="font-size:15px;color:#6e6e6e;">{{ venue }}</p>
          <p style="margin-top:32px;"><a href="{{ website_url }}" style="display:inline-block;padding:14px 36px;background-color:#9c8358;color:#ffffff;text-decoration:none;letter-spacing:2px;font-size:13px;text-transform:uppercase;">Visit Our Website</a></p>
          <p style="font-size:14px;color:#6e6e6e;margin-top:24px;">A formal invitation will follow.</p>
` + layoutBottom

const photoSaveTheDateHTML = layoutTop + `
          <img src="{{ website_url }}/images/save-the-date.jpg" alt="{{ couple_name }}" width="464" style="width:100%;max-width:464px;display:block;margin:0 auto 24px;" />
          <p style="font-size:13px;letter-spacing:4px;text-transform:uppercase;color:#9c8358;">Save the Date</p>
          <h1 style="font-size:32px;font-weight:normal;margin:16px 0;">{{ couple_name }}</h1>
          <p style="font-size:16px;line-height:1.7;">Dear {{ guest_name | escape | default: "Friend" }},</p>
          <p style="font-size:18px;margin:24px 0 8px;">{{ date }}</p>
          <p style="font-size:15px;color:#6e6e6e;">{{ venue }}</p>
          <p style="margin-top:32px;"><a href="{{ website_url }}" style="display:inline-block;padding:14px 36px;background-color:#9c8358;color:#ffffff;text-decoration:none;letter-spacing:2px;font-size:13px;text-transform:uppercase;">Visit Our Website</a></p>
` + layoutBottom

const formalInviteHTML = layoutTop + `
          <p style="font-size:13px;letter-spacing:4px;text-transform:uppercase;color:#9c8358;">You're Invited</p>
          <h1 style="font-size:32px;font-weight:normal;margin:16px 0;">{{ couple_name }}</h1>
          <p style="font-size:16px;line-height:1.7;">Dear {{ guest_name | escape | default: "Friend" }},</p>
          <p style="font-size:16px;line-height:1.7;">Together with our families, we joyfully invite you to celebrate our wedding.</p>
          <p style="font-size:18px;margin:24px 0 8px;">{{ date }}</p>
          <p style="font-size:15px;color:#6e6e6e;">{{ venue }}</p>
          <p style="margin-top:32px;"><a href="{{ website_url }}/rsvp" style="display:inline-block;padding:14px 36px;background-color:#9c8358;color:#ffffff;text-decoration:none;letter-spacing:2px;font-size:13px;text-transform:uppercase;">RSVP Now</a></p>
          <p style="font-size:14px;color:#6e6e6e;margin-top:24px;">Kindly respond at your earliest convenience.</p>
` + layoutBottom

const genericHTML = layoutTop + `
          <h1 style="font-size:28px;font-weight:normal;margin:16px 0;">{{ heading }}</h1>
          <p style="font-size:16px;line-height:1.7;">Dear {{ guest_name | escape | default: "Friend" }},</p>
          <p style="font-size:16px;line-height:1.7;">{{ body }}</p>
          <p style="margin-top:32px;"><a href="{{ website_url }}" style="display:inline-block;padding:14px 36px;background-color:#9c8358;color:#ffffff;text-decoration:none;letter-spacing:2px;font-size:13px;text-transform:uppercase;">{{ cta_text | default: "Visit Our Website" }}</a></p>
` + layoutBottom
