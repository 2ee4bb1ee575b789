package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Render(t *testing.T) {
	tmpl, err := NewTemplate(EventComplaintTriaged, ChannelSMS,
		"[{{.ticket_no}}] triaged",
		"Your complaint {{.ticket_no}} is now {{.status}} ({{.priority}}).")
	require.NoError(t, err)

	title, body, err := tmpl.Render(map[string]interface{}{
		"ticket_no": "C-20260212-00001",
		"status":    "TRIAGED",
		"priority":  "HIGH",
	})
	require.NoError(t, err)
	assert.Equal(t, "[C-20260212-00001] triaged", title)
	assert.Equal(t, "Your complaint C-20260212-00001 is now TRIAGED (HIGH).", body)
}

func TestTemplate_RenderFailures(t *testing.T) {
	tmpl, err := NewTemplate(EventComplaintNew, ChannelSMS, "", "New: {{.title}}")
	require.NoError(t, err)

	_, _, err = tmpl.Render(map[string]interface{}{"other": 1})
	assert.Error(t, err, "missing keys fail rendering")

	tmpl.Disable()
	_, _, err = tmpl.Render(map[string]interface{}{"title": "x"})
	assert.ErrorContains(t, err, "disabled")

	tmpl.Enable()
	_, body, err := tmpl.Render(map[string]interface{}{"title": "x"})
	require.NoError(t, err)
	assert.Equal(t, "New: x", body)
}

func TestNewTemplate_Validation(t *testing.T) {
	_, err := NewTemplate(EventKey("NOPE"), ChannelSMS, "", "body")
	assert.Error(t, err)

	_, err = NewTemplate(EventComplaintNew, "", "", "body")
	assert.Error(t, err)

	_, err = NewTemplate(EventComplaintNew, ChannelSMS, "", "")
	assert.Error(t, err)

	_, err = NewTemplate(EventComplaintNew, ChannelSMS, "", "{{.unterminated")
	assert.ErrorContains(t, err, "syntax")
}

func TestParseRecipient(t *testing.T) {
	id, site, err := ParseRecipient(UserRecipient(42))
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Empty(t, site)

	id, site, err = ParseRecipient(SiteRecipient("SITE-A"))
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Equal(t, "SITE-A", site)

	for _, bad := range []string{"", "user:", "user:0", "user:abc", "site:", "phone:010"} {
		_, _, err := ParseRecipient(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewQueueEntry(t *testing.T) {
	cid := uint(5)
	e, err := NewQueueEntry("evt-1", EventWorkStatus, &cid, ChannelSMS, UserRecipient(7), "", "raw", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, e.Status())
	assert.Equal(t, 0, e.Attempts())
	assert.NotNil(t, e.Data())

	_, err = NewQueueEntry("", EventWorkStatus, nil, ChannelSMS, "user:1", "", "", nil)
	assert.Error(t, err)
	_, err = NewQueueEntry("evt", EventKey("X"), nil, ChannelSMS, "user:1", "", "", nil)
	assert.Error(t, err)
	_, err = NewQueueEntry("evt", EventWorkStatus, nil, "", "user:1", "", "", nil)
	assert.Error(t, err)
	_, err = NewQueueEntry("evt", EventWorkStatus, nil, ChannelSMS, "", "", "", nil)
	assert.Error(t, err)
}

func TestTruncateError(t *testing.T) {
	short := "smtp timeout"
	assert.Equal(t, short, TruncateError(short))

	long := make([]rune, MaxErrorLength+10)
	for i := range long {
		long[i] = '오'
	}
	assert.Len(t, []rune(TruncateError(string(long))), MaxErrorLength)
}
