package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"verse-journal/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/sqlite/*.sql migrations/oracle/*.sql
var migrationFiles embed.FS

// RunMigrations applies every pending up migration.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	switch db.DriverName() {
	case DriverSQLite:
		m, err := newSQLiteMigrator(db)
		if err != nil {
			return err
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("could not apply migrations: %w", err)
		}
		logMigrationVersion(m)
		return nil
	case DriverOracle:
		return runOracleUp(ctx, db)
	default:
		return fmt.Errorf("migrations are not available for driver %q", db.DriverName())
	}
}

// RollbackMigrations reverts the last steps migrations.
func RollbackMigrations(ctx context.Context, db *sqlx.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	switch db.DriverName() {
	case DriverSQLite:
		m, err := newSQLiteMigrator(db)
		if err != nil {
			return err
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("could not roll back migrations: %w", err)
		}
		logMigrationVersion(m)
		return nil
	case DriverOracle:
		return runOracleDown(ctx, db, steps)
	default:
		return fmt.Errorf("migrations are not available for driver %q", db.DriverName())
	}
}

// The returned migrator shares db and must not be closed: closing the
// sqlite driver closes the underlying *sql.DB.
func newSQLiteMigrator(db *sqlx.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations/sqlite")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return m, nil
}

func logMigrationVersion(m *migrate.Migrate) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Get().Info("Database schema is empty")
		return
	}
	if err != nil {
		logger.Get().Warn("Could not read schema version", zap.Error(err))
		return
	}
	logger.Get().Info("Database schema migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
}

type migrationFile struct {
	version uint64
	name    string
}

// oracleMigrations lists the embedded Oracle files for one direction,
// ordered by version.
func oracleMigrations(direction string) ([]migrationFile, error) {
	dir := "migrations/oracle"
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	suffix := "." + direction + ".sql"
	var files []migrationFile
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		prefix, _, ok := strings.Cut(entry.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration file %s has no version prefix", entry.Name())
		}
		version, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration file %s has an invalid version: %w", entry.Name(), err)
		}
		files = append(files, migrationFile{version: version, name: path.Join(dir, entry.Name())})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })
	return files, nil
}

// splitStatements breaks a migration file into single statements, since the
// Oracle driver executes one statement per call.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		stmt := strings.TrimSpace(part)
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func ensureOracleVersionTable(ctx context.Context, db *sqlx.DB) error {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM USER_TABLES WHERE TABLE_NAME = 'SCHEMA_MIGRATIONS'")
	if err != nil {
		return fmt.Errorf("could not check migration table: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err = db.ExecContext(ctx, "CREATE TABLE SCHEMA_MIGRATIONS (VERSION NUMBER(19) PRIMARY KEY, APPLIED_AT TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)")
	if err != nil {
		return fmt.Errorf("could not create migration table: %w", err)
	}
	return nil
}

func appliedOracleVersions(ctx context.Context, db *sqlx.DB) (map[uint64]bool, error) {
	var versions []uint64
	if err := db.SelectContext(ctx, &versions, "SELECT VERSION FROM SCHEMA_MIGRATIONS"); err != nil {
		return nil, fmt.Errorf("could not read applied migrations: %w", err)
	}
	applied := make(map[uint64]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func execMigrationFile(ctx context.Context, db *sqlx.DB, name string) error {
	content, err := fs.ReadFile(migrationFiles, name)
	if err != nil {
		return fmt.Errorf("could not read migration file %s: %w", name, err)
	}
	for _, stmt := range splitStatements(string(content)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
	}
	return nil
}

func runOracleUp(ctx context.Context, db *sqlx.DB) error {
	if err := ensureOracleVersionTable(ctx, db); err != nil {
		return err
	}
	applied, err := appliedOracleVersions(ctx, db)
	if err != nil {
		return err
	}
	files, err := oracleMigrations("up")
	if err != nil {
		return err
	}

	for _, f := range files {
		if applied[f.version] {
			continue
		}
		if err := execMigrationFile(ctx, db, f.name); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, db.Rebind("INSERT INTO SCHEMA_MIGRATIONS (VERSION) VALUES (?)"), f.version); err != nil {
			return fmt.Errorf("could not record migration %d: %w", f.version, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", f.name))
	}
	return nil
}

func runOracleDown(ctx context.Context, db *sqlx.DB, steps int) error {
	if err := ensureOracleVersionTable(ctx, db); err != nil {
		return err
	}
	applied, err := appliedOracleVersions(ctx, db)
	if err != nil {
		return err
	}
	files, err := oracleMigrations("down")
	if err != nil {
		return err
	}

	for i := len(files) - 1; i >= 0 && steps > 0; i-- {
		f := files[i]
		if !applied[f.version] {
			continue
		}
		if err := execMigrationFile(ctx, db, f.name); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, db.Rebind("DELETE FROM SCHEMA_MIGRATIONS WHERE VERSION = ?"), f.version); err != nil {
			return fmt.Errorf("could not unrecord migration %d: %w", f.version, err)
		}
		logger.Get().Info("Reverted migration", zap.String("file", f.name))
		steps--
	}
	return nil
}
