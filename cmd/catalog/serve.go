package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shopfront/catalog-service/app/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(db *gorm.DB) error {
				srv := server.New(a.cfg.HTTPAddr, db, a.log, a.cfg.ShutdownTimeout)
				return srv.Run(cmd.Context())
			})
		},
	}
}
