package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqlConnectWait = 30 * time.Second

// OpenSQL opens a gorm connection for the postgres or sqlite backend.
// Postgres may still be starting, so the first ping is retried with
// exponential backoff.
func OpenSQL(ctx context.Context, backend, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var dialector gorm.Dialector
	switch backend {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql backend %q", backend)
	}

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		return sqlDB.PingContext(ctx)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = sqlConnectWait
	notify := func(err error, next time.Duration) {
		logger.Warn("[database][sql] connection failed, retrying",
			zap.String("backend", backend), zap.Duration("next", next), zap.Error(err))
	}
	if err := backoff.RetryNotify(connect, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, fmt.Errorf("connect %s: %w", backend, err)
	}

	logger.Info("[database][sql] connected", zap.String("backend", backend))
	return db, nil
}
