package notification

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

const (
	MaxTemplateTitleLength = 200
	MaxTemplateBodyLength  = 10000
)

// Template renders the payload for one event key on one channel. Title and
// body are Go text/template sources executed against the event data.
type Template struct {
	id        uint
	eventKey  EventKey
	channel   string
	title     string
	body      string
	enabled   bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(eventKey EventKey, channel, title, body string) (*Template, error) {
	t := &Template{
		eventKey: eventKey,
		channel:  channel,
		enabled:  true,
	}
	if err := t.Update(title, body); err != nil {
		return nil, err
	}
	if !eventKey.IsValid() {
		return nil, fmt.Errorf("invalid event key: %s", eventKey)
	}
	if channel == "" {
		return nil, fmt.Errorf("channel is required")
	}
	t.createdAt = t.updatedAt
	return t, nil
}

func ReconstructTemplate(
	id uint,
	eventKey EventKey,
	channel, title, body string,
	enabled bool,
	createdAt, updatedAt time.Time,
) (*Template, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	return &Template{
		id:        id,
		eventKey:  eventKey,
		channel:   channel,
		title:     title,
		body:      body,
		enabled:   enabled,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Template) ID() uint { return t.id }
func (t *Template) EventKey() EventKey { return t.eventKey }
func (t *Template) Channel() string { return t.channel }
func (t *Template) Title() string { return t.title }
func (t *Template) Body() string { return t.body }
func (t *Template) Enabled() bool { return t.enabled }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

func (t *Template) SetID(id uint) {
	t.id = id
}

// Update replaces the sources after checking that both parse.
func (t *Template) Update(title, body string) error {
	if len(title) > MaxTemplateTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTemplateTitleLength)
	}
	if len(body) == 0 {
		return fmt.Errorf("body is required")
	}
	if len(body) > MaxTemplateBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", MaxTemplateBodyLength)
	}
	if _, err := template.New("title").Parse(title); err != nil {
		return fmt.Errorf("invalid title template syntax: %w", err)
	}
	if _, err := template.New("body").Parse(body); err != nil {
		return fmt.Errorf("invalid body template syntax: %w", err)
	}

	t.title = title
	t.body = body
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Template) Enable() {
	t.enabled = true
	t.updatedAt = biztime.NowUTC()
}

func (t *Template) Disable() {
	t.enabled = false
	t.updatedAt = biztime.NowUTC()
}

// Render executes title and body against data. Missing keys are errors so a
// template that references an absent field falls back to the raw payload.
func (t *Template) Render(data map[string]interface{}) (string, string, error) {
	if !t.enabled {
		return "", "", fmt.Errorf("template is disabled")
	}

	titleTmpl, err := template.New("title").Option("missingkey=error").Parse(t.title)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse title template: %w", err)
	}
	bodyTmpl, err := template.New("body").Option("missingkey=error").Parse(t.body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse body template: %w", err)
	}

	var titleBuf bytes.Buffer
	if err := titleTmpl.Execute(&titleBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute title template: %w", err)
	}
	var bodyBuf bytes.Buffer
	if err := bodyTmpl.Execute(&bodyBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute body template: %w", err)
	}

	return titleBuf.String(), bodyBuf.String(), nil
}
