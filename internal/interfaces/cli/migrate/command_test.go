package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared/config"
)

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "create"}, names)
}

func TestCreateCommand_DefaultsToMySQL(t *testing.T) {
	cmd := newCreateCommand()

	flag := cmd.Flags().Lookup("driver")
	require.NotNil(t, flag)
	assert.Equal(t, config.DriverMySQL, flag.DefValue)

	require.NoError(t, cmd.ParseFlags([]string{"--name", "add_index", "--driver", config.DriverSQLite}))
	assert.Equal(t, config.DriverSQLite, driver)
	assert.Equal(t, "add_index", name)
}
