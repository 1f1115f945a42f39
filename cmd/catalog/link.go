package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "link PRODUCT CATEGORY",
		Short: "Add a product to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(db *gorm.DB) error {
				return newSeeder(a, db).Link(cmd.Context(), args[0], args[1])
			})
		},
	}
}

func newUnlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink PRODUCT CATEGORY",
		Short: "Remove a product from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDB(func(db *gorm.DB) error {
				return newSeeder(a, db).Unlink(cmd.Context(), args[0], args[1])
			})
		},
	}
}
