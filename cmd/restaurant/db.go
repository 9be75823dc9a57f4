package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/internal/seed"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

var seedFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		defer a.close()

		if err := (&repo.GormRepo{DB: a.db}).Migrate(context.Background()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		a.logger.Info("migrate_success")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load menu items from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data := seed.DefaultMenu
		if seedFile != "" {
			raw, err := os.ReadFile(seedFile)
			if err != nil {
				return err
			}
			data = raw
		}

		a, err := boot()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := logging.IntoContext(context.Background(), a.logger)
		r := &repo.GormRepo{DB: a.db}
		if err := r.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		var idx seed.Indexer
		mi, err := a.menuIndex(ctx)
		if err != nil {
			a.logger.Warn("seed_without_index", "error", err)
		} else if mi != nil {
			idx = mi
		}

		res, err := seed.Run(ctx, r, idx, data)
		if err != nil {
			return err
		}
		fmt.Printf("menu items: %d created, %d already present, %d indexed\n", res.Created, res.Skipped, res.Indexed)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "menu YAML file (defaults to the built-in menu)")
}
