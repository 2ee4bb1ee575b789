package dispatch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/infrastructure/database"
	"github.com/sitedesk/sitedesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/sitedesk/sitedesk/internal/interfaces/http"
)

var (
	opts bootstrap.Options
	once bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Deliver queued notifications",
		Long: `Run the notification dispatch worker. Pending entries are claimed, rendered and sent
until the process receives SIGINT or SIGTERM. With --once a single pass is run.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single dispatch pass and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	if once {
		defer container.Shutdown(context.Background())

		result, err := container.DispatchNotifications().Execute(cmd.Context())
		if err != nil {
			return fmt.Errorf("dispatch failed: %w", err)
		}
		log.Infow("dispatch pass completed",
			"requeued", result.Requeued,
			"claimed", result.Claimed,
			"sent", result.Sent,
			"failed", result.Failed)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Infow("starting notification dispatch worker", "interval", cfg.Notification.DispatchInterval)
	container.DispatchScheduler().Start(ctx)

	<-ctx.Done()
	log.Infow("shutting down notification dispatch worker")
	container.Shutdown(context.Background())
	return nil
}
