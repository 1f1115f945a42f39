package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shopfront/catalog-service/app/seed"
)

func newSeeder(a *app, db *gorm.DB) *seed.Seeder {
	return seed.NewSeeder(db, a.log)
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Load categories and products from a JSON fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			fixture, err := seed.Parse(file)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			return a.withDB(func(db *gorm.DB) error {
				res, err := newSeeder(a, db).Apply(cmd.Context(), fixture)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d categories, %d products, %d links\n",
					res.Categories, res.Products, res.Links)
				return nil
			})
		},
	}
}
