package main

import (
	"database/sql"
	"errors"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/config"
)

func main() {
	var dir string
	cfg := config.New()

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back hydration database migrations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"), "directory with goose SQL migrations")

	run := func(action func(db *sql.DB, dir string) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			db, err := open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			return action(db, dir)
		}
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  run(goose.Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE:  run(goose.Down),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print applied and pending migrations",
			RunE:  run(goose.Status),
		},
	)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func open(cfg *config.Config) (*sql.DB, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	pg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	db, err := sql.Open("postgres", pg.ConnString()+"?sslmode="+cfg.GetStringOr("POSTGRES_SSLMODE", "disable"))
	if err != nil {
		return nil, errors.New("opening database error: " + err.Error())
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.New("pinging database error: " + err.Error())
	}
	return db, nil
}
