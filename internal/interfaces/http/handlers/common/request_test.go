package common

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/interfaces/http/handlers/testutil"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		value   string
		want    uint
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, _ := testutil.NewTestContext(http.MethodGet, "/x", nil)
			testutil.SetURLParam(c, "id", tt.value)

			id, err := ParseID(c, "id")
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestActor(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/x", nil)
	_, ok := Actor(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, _ = testutil.NewTestContext(http.MethodGet, "/x", nil)
	testutil.SetActorContext(c, testutil.Staff(4))
	actor, ok := Actor(c)
	assert.True(t, ok)
	assert.Equal(t, uint(4), actor.UserID)
}

func TestBindJSON_Invalid(t *testing.T) {
	c, w := testutil.NewRawTestContext(http.MethodPost, "/x", "{not json")
	var target struct {
		Name string `json:"name" binding:"required"`
	}

	assert.False(t, BindJSON(c, &target))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestBindJSON_BlankField(t *testing.T) {
	c, w := testutil.NewRawTestContext(http.MethodPost, "/x", `{"comment":"   "}`)
	var target struct {
		Comment string `json:"comment" binding:"required,notblank"`
	}

	assert.False(t, BindJSON(c, &target))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Contains(t, resp.Error.Details, "comment must not be blank")
}

func TestQueryBool(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/x", nil)
	testutil.SetQueryParams(c, map[string]string{"active": "false"})
	assert.False(t, QueryBool(c, "active", true))
	assert.True(t, QueryBool(c, "missing", true))
}

func TestBindOptionalJSON_EmptyBody(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodPost, "/x", nil)
	var target struct {
		Note string `json:"note"`
	}

	assert.True(t, BindOptionalJSON(c, &target))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, target.Note)
}
