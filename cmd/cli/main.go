package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/isteps/burnout-risk/pkg/runtime/app"
	"github.com/isteps/burnout-risk/pkg/runtime/terminal"
	"github.com/isteps/burnout-risk/pkg/services/config"
	"github.com/isteps/burnout-risk/pkg/services/insights"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional for the CLI
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("BURNOUT_CONFIG"))
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)
	ctx := logger.WithContext(context.Background())

	engine, err := app.NewEngine(ctx, cfg.Risk)
	if err != nil {
		return err
	}

	var (
		db  *sql.DB
		svc insights.Service
	)
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	cli := terminal.NewCLI(terminal.Options{
		Engine: engine,
		Insights: func() (insights.Service, error) {
			if svc != nil {
				return svc, nil
			}
			var err error
			svc, db, err = app.OpenInsights(cfg.Store, engine)
			return svc, err
		},
		Output: os.Stdout,
		Logger: logger,
	})

	return cli.Execute(ctx)
}
