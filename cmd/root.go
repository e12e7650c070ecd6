package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uspn-tools/rostergen/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rostergen",
	Short: "Roster normalization and seed-SQL generator",
	Long:  "Ingests the responsables spreadsheet and the formations CSV, normalizes them into one entity/person/role/assignment graph, and emits the seed SQL document.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
