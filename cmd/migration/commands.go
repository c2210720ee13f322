package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/urfave/cli/v2"
)

var defaultMigrationDirs = []string{"./db/migrations", "/app/db/migrations"}

func newApp(logger *logging.Logger) *cli.App {
	return &cli.App{
		Name:  "migration",
		Usage: "apply scout-market schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db-url",
				Usage:    "postgres connection url",
				EnvVars:  []string{"DB_URL"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "directory holding *.up.sql and *.down.sql files",
				EnvVars: []string{"MIGRATIONS_DIR", "MIGRATIONS_PATH"},
			},
			&cli.BoolFlag{
				Name:    "disable-prepared-binary-result",
				Usage:   "append disable_prepared_binary_result=yes to the url",
				EnvVars: []string{"DB_DISABLE_PREPARED_BINARY_RESULT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: withMigrator(logger, func(c *cli.Context, m *migrate.Migrate) error {
					if err := ignoreNoChange(logger, m.Up()); err != nil {
						return err
					}
					logger.Info("migrations applied")
					return nil
				}),
			},
			{
				Name:      "down",
				Usage:     "roll back the last N migrations",
				ArgsUsage: "[steps]",
				Action: withMigrator(logger, func(c *cli.Context, m *migrate.Migrate) error {
					steps, err := parseSteps(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(logger, m.Steps(-steps)); err != nil {
						return err
					}
					logger.Info("migrations rolled back", "steps", steps)
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: withMigrator(logger, func(c *cli.Context, m *migrate.Migrate) error {
					version, dirty, err := m.Version()
					if errors.Is(err, migrate.ErrNilVersion) {
						fmt.Fprintln(c.App.Writer, "version: none")
						fmt.Fprintln(c.App.Writer, "dirty: false")
						return nil
					}
					if err != nil {
						return fmt.Errorf("read version: %w", err)
					}
					fmt.Fprintf(c.App.Writer, "version: %d\n", version)
					fmt.Fprintf(c.App.Writer, "dirty: %t\n", dirty)
					return nil
				}),
			},
			{
				Name:      "force",
				Usage:     "set the schema version without running migrations",
				ArgsUsage: "<version>",
				Action: withMigrator(logger, func(c *cli.Context, m *migrate.Migrate) error {
					version, err := parseVersion(c.Args().First())
					if err != nil {
						return err
					}
					if err := m.Force(version); err != nil {
						return fmt.Errorf("force version %d: %w", version, err)
					}
					logger.Info("schema version forced", "version", version)
					return nil
				}),
			},
			{
				Name:      "goto",
				Usage:     "migrate up or down to a target version",
				ArgsUsage: "<version>",
				Action: withMigrator(logger, func(c *cli.Context, m *migrate.Migrate) error {
					target, err := parseTarget(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(logger, m.Migrate(target)); err != nil {
						return err
					}
					logger.Info("migrated to version", "version", target)
					return nil
				}),
			},
		},
	}
}

func withMigrator(logger *logging.Logger, fn func(*cli.Context, *migrate.Migrate) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		dir, err := resolveMigrationsDir(c.String("dir"))
		if err != nil {
			return err
		}
		dbURL := normalizeDBURL(c.String("db-url"), c.Bool("disable-prepared-binary-result"))

		sourceURL := "file://" + filepath.ToSlash(dir)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		defer func() {
			srcErr, dbErr := m.Close()
			if srcErr != nil {
				logger.Warn("close migration source", "error", srcErr)
			}
			if dbErr != nil {
				logger.Warn("close migration db", "error", dbErr)
			}
		}()

		logger.Info("migration source resolved", "source", sourceURL)
		return fn(c, m)
	}
}

func ignoreNoChange(logger *logging.Logger, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", raw, err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("version argument is required")
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("target version argument is required")
	}
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func resolveMigrationsDir(explicit string) (string, error) {
	candidates := append([]string{strings.TrimSpace(explicit)}, defaultMigrationDirs...)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked --dir, %s)", strings.Join(defaultMigrationDirs, ", "))
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}
