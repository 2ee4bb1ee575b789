package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/infrastructure/database"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/seeds"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/sitedesk/sitedesk/internal/interfaces/http"
)

var (
	opts     bootstrap.Options
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the catalog seed file",
		Long: `Load categories, guidance templates, FAQs and notification templates from a YAML file.
Existing categories are matched by code and updated, so the command can be re-run safely.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed file (default: catalog.seed_file)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	path := seedFile
	if path == "" {
		path = cfg.Catalog.SeedFile
	}

	doc, err := seeds.LoadFile(path)
	if err != nil {
		return err
	}

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	defer container.Shutdown(context.Background())

	result, err := container.SeedCatalog().Execute(cmd.Context(), *doc)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	log.Infow("catalog seeded",
		"file", path,
		"categories_created", result.CategoriesCreated,
		"categories_updated", result.CategoriesUpdated,
		"guidance_upserted", result.GuidanceUpserted,
		"faqs_created", result.FAQsCreated,
		"templates_upserted", result.TemplatesUpserted)
	return nil
}
