package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database owns the connection pool. Callers never hold on to a session
// beyond one operation: reads go through Session and writes through Transact.
type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              cfg.Driver == config.DriverPostgres,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// An in-memory SQLite database lives inside a single connection.
	if isInMemory(cfg) {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.SetupJoinTable(&models.Movie{}, "Actors", &models.MovieActor{}); err != nil {
		return nil, fmt.Errorf("failed to set up movie_actor join table: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established successfully")

	database := &Database{
		DB:     db,
		config: cfg,
	}

	if cfg.AutoMigrate {
		if err := autoMigrate(db); err != nil {
			logrus.WithError(err).Error("Failed to run auto migration")
			return nil, fmt.Errorf("failed to run auto migration: %w", err)
		}
	}

	return database, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func isInMemory(cfg config.DatabaseConfig) bool {
	return (cfg.Driver == config.DriverSQLite || cfg.Driver == "") && strings.Contains(cfg.Path, ":memory:")
}

func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.config.QueryTimeout)
}

// Session returns a session scoped to one read operation. The cancel func
// must be called when the operation is done.
func (d *Database) Session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := d.withTimeout(ctx)
	return d.DB.WithContext(ctx), cancel
}

// Transact runs fn inside a transaction that is committed when fn returns nil
// and rolled back when it returns an error or panics.
func (d *Database) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	return d.DB.WithContext(ctx).Transaction(fn)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func autoMigrate(db *gorm.DB) error {
	logrus.Info("Running auto migration...")

	err := db.AutoMigrate(
		&models.Movie{},
		&models.Actor{},
		&models.MovieActor{},
	)

	if err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}
