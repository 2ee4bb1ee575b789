package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachments(t *testing.T) {
	many := make([]string, 11)
	for i := range many {
		many[i] = "https://cdn.example.com/a.jpg"
	}

	tests := []struct {
		name    string
		urls    []string
		wantErr string
	}{
		{"nil is empty", nil, ""},
		{"http and https", []string{"http://a.example/x.png", "https://b.example/y.png"}, ""},
		{"upper case scheme", []string{"HTTPS://a.example/x.png"}, ""},
		{"too many", many, "at most 10"},
		{"too long", []string{"https://a.example/" + strings.Repeat("x", 500)}, "exceeds 500"},
		{"ftp rejected", []string{"ftp://a.example/x"}, "http or https"},
		{"javascript rejected", []string{"javascript:alert(1)"}, "http or https"},
		{"empty entry", []string{" "}, "is empty"},
		{"missing host", []string{"https:///path"}, "no host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAttachments(tt.urls, 0, 0)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, len(tt.urls))
		})
	}
}

func TestNewAttachments_ExactlyAtLimits(t *testing.T) {
	url := "https://a.example/" + strings.Repeat("x", 500-len("https://a.example/"))
	require.Len(t, url, 500)

	urls := make([]string, 10)
	for i := range urls {
		urls[i] = url
	}

	got, err := NewAttachments(urls, 10, 500)
	require.NoError(t, err)
	assert.Len(t, got, 10)
}
