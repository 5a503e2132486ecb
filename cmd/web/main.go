package main

import (
	"fmt"
	"net"
	"os"

	"github.com/isteps/burnout-risk/pkg/runtime/app"
	"github.com/isteps/burnout-risk/pkg/server"
	"github.com/isteps/burnout-risk/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the burnout risk web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (default is ./config.yaml when present)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log, os.Stdout)
	ctx := logger.WithContext(cmd.Context())

	engine, err := app.NewEngine(ctx, cfg.Risk)
	if err != nil {
		return fmt.Errorf("failed to configure risk engine: %w", err)
	}

	svc, db, err := app.OpenInsights(cfg.Store, engine)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info().
		Str("db", cfg.Store.DbPath).
		Str("scorer", cfg.Risk.Scorer).
		Str("timezone", engine.Location().String()).
		Msg("configuration loaded")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Insights: svc,
			Location: engine.Location(),
		},
	})

	return webAPI.Start()
}
