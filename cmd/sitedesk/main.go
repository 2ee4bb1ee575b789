package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/interfaces/cli/dispatch"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/migrate"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/seed"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/server"
	"github.com/sitedesk/sitedesk/internal/shared/version"
)

// @title SiteDesk API
// @version 1.0
// @description Complaint lifecycle and workflow engine for apartment complexes.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:     "sitedesk",
		Short:   "SiteDesk - apartment complex complaint desk",
		Long:    `SiteDesk runs the complaint workflow API, its database migrations, catalog seeding and the notification dispatch worker.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		dispatch.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
