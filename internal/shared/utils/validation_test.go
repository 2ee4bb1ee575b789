package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

type triageInput struct {
	Scope string `json:"scope" validate:"required,oneof=PRIVATE COMMON EMERGENCY"`
	Note  string `json:"note" validate:"omitempty,notblank,max=10"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   triageInput
		details string
	}{
		{"valid", triageInput{Scope: "COMMON", Note: "ok"}, ""},
		{"missing scope", triageInput{}, "scope is required"},
		{"unknown scope", triageInput{Scope: "SHARED"}, "scope must be one of [PRIVATE COMMON EMERGENCY]"},
		{"blank note", triageInput{Scope: "COMMON", Note: "  "}, "note must not be blank"},
		{"long note", triageInput{Scope: "COMMON", Note: "01234567890"}, "note must be at most 10 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.details == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			assert.Contains(t, appErr.Details, tt.details)
		})
	}
}
