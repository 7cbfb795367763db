package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/roi-server/internal/config"
	"github.com/carson-networks/roi-server/internal/storage"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "db_migrations",
		Usage: "manage the roi-server database schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply every pending migration",
				Action: up,
			},
			{
				Name:  "down",
				Usage: "roll back applied migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Value: 1,
						Usage: "number of migrations to roll back",
					},
				},
				Action: down,
			},
			{
				Name:   "version",
				Usage:  "print the applied migration version",
				Action: version,
			},
		},
		Action: up,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func up(_ *cli.Context) error {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return fmt.Errorf("ProcessEnvironmentVariables: %w", err)
	}

	pre, post, err := storage.RunMigrations(env.PostgresDSN())
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  pre,
		"postMigrationVersion": post,
	}).Info("Migration status")
	return nil
}

func down(c *cli.Context) error {
	steps := c.Int("steps")
	if steps < 1 {
		return errors.New("steps must be at least 1")
	}

	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	pre, err := storage.MigrationVersion(m)
	if err != nil {
		return fmt.Errorf("pre-migration version: %w", err)
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back %d migrations: %w", steps, err)
	}

	post, err := storage.MigrationVersion(m)
	if err != nil {
		return fmt.Errorf("post-migration version: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  pre,
		"postMigrationVersion": post,
	}).Info("Migration status")
	return nil
}

func version(_ *cli.Context) error {
	m, err := openMigrator()
	if err != nil {
		return err
	}
	defer m.Close()

	v, err := storage.MigrationVersion(m)
	if err != nil {
		return err
	}

	logrus.WithField("version", v).Info("Migration version")
	return nil
}

func openMigrator() (*migrate.Migrate, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, fmt.Errorf("ProcessEnvironmentVariables: %w", err)
	}

	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	m, err := storage.NewMigrator(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}
