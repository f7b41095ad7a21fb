// @title Finance Learning API
// @version 1.0
// @description Backend for the personal-finance learning app: learning paths, progress, badges and rewards.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"finlit_backend/internal/app"
	"finlit_backend/internal/catalog"
	"finlit_backend/internal/config"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}

	root := &cobra.Command{
		Use:           "finlit",
		Short:         "Personal-finance learning backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "config directory or YAML file")

	var forceMigrate bool
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.ForceMigrate = forceMigrate

			application, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
	serve.Flags().BoolVar(&forceMigrate, "migrate", false, "run migrations at startup even in release mode")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the schema, seed reward pools and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := app.Migrate(cfg); err != nil {
				return err
			}
			log.Println("Database migration completed")
			return nil
		},
	}

	topics := &cobra.Command{
		Use:   "topics",
		Short: "List the learning path topics of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			for _, t := range cat.Topics() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	root.AddCommand(serve, migrate, topics)
	// Bare invocation serves.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}
