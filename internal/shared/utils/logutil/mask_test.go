package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskContact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"email", "resident@example.com", "res*****@example.com"},
		{"short local part", "ab@example.com", "**@example.com"},
		{"phone", "01012345678", "010********"},
		{"multibyte", "김철수영희", "김철수**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskContact(tt.input))
		})
	}
}
