package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shopfront/catalog-service/app/config"
	"github.com/shopfront/catalog-service/app/database"
)

// app is built once per invocation by the root command and shared with the
// subcommands.
type app struct {
	cfg config.Config
	log *logrus.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("catalog")
		stop()
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	a := &app{log: log}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Product and category catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.SetLevel(cfg.LogLevel)
			return nil
		},
	}

	root.AddCommand(
		newServeCmd(a),
		newSeedCmd(a),
		newLinkCmd(a),
		newUnlinkCmd(a),
	)
	return root
}

// withDB opens the configured store for the duration of fn.
func (a *app) withDB(fn func(db *gorm.DB) error) error {
	db, closeDB, err := database.New(a.cfg.Database, a.log)
	if err != nil {
		return err
	}
	defer closeDB()
	return fn(db)
}
