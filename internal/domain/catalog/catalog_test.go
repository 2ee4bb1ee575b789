package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sitedesk/sitedesk/internal/domain/complaint/valueobjects"
	"github.com/sitedesk/sitedesk/internal/shared/biztime"
)

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		catName string
		scope   vo.Scope
		wantErr bool
	}{
		{"valid", "FIXTURE_IN_UNIT", "Fixture inside unit", vo.ScopePrivate, false},
		{"lower case code", "fixture", "Fixture", vo.ScopePrivate, true},
		{"empty name", "ELEVATOR", "", vo.ScopeCommon, true},
		{"bad scope", "ELEVATOR", "Elevator", vo.Scope("X"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCategory(tt.code, tt.catName, tt.scope, 1)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, c.IsActive())
			assert.Equal(t, tt.scope, c.AllowedScope())
		})
	}
}

func TestCategory_Deactivate(t *testing.T) {
	c, err := NewCategory("ELEVATOR", "Elevator", vo.ScopeCommon, 1)
	require.NoError(t, err)
	c.Deactivate()
	assert.False(t, c.IsActive())
	c.Activate()
	assert.True(t, c.IsActive())
}

func TestNotice_PublishKeepsFirstPublishTime(t *testing.T) {
	site := "SITE-A"
	n, err := NewNotice(&site, "Water outage", "**Tuesday** 10:00-12:00", true, 1)
	require.NoError(t, err)
	assert.Equal(t, NoticeStatusDraft, n.Status())
	assert.Nil(t, n.PublishedAt())

	n.Publish()
	require.NotNil(t, n.PublishedAt())
	first := *n.PublishedAt()

	restore := biztime.SetClock(func() time.Time { return first.Add(24 * time.Hour) })
	defer restore()

	n.Unpublish()
	n.Publish()
	assert.Equal(t, first, *n.PublishedAt())
	assert.True(t, n.IsPublished())
}

func TestNewNotice_EmptySiteMeansGlobal(t *testing.T) {
	empty := ""
	n, err := NewNotice(&empty, "t", "b", false, 1)
	require.NoError(t, err)
	assert.Nil(t, n.SiteCode())

	_, err = NewNotice(nil, "", "b", false, 1)
	assert.Error(t, err)
	_, err = NewNotice(nil, "t", "b", false, 0)
	assert.Error(t, err)
}

func TestFAQAndGuidance(t *testing.T) {
	f, err := NewFAQ("How do I reset the boiler?", "Hold the reset button for 5 seconds.", 2)
	require.NoError(t, err)
	assert.True(t, f.IsActive())
	f.SetActive(false)
	assert.False(t, f.IsActive())

	_, err = NewFAQ("", "a", 1)
	assert.Error(t, err)

	g, err := NewGuidanceTemplate(3, "Faucet drip", "Replace the cartridge under the handle.")
	require.NoError(t, err)
	assert.True(t, g.IsActive())

	_, err = NewGuidanceTemplate(0, "t", "b")
	assert.Error(t, err)
}
