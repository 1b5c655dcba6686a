package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reentrybuddy/internal/middleware"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// record is the single-table layout backing the sqlite KV. One row per key,
// JSON payloads stored opaquely.
type record struct {
	Key       string `gorm:"primaryKey;size:512"`
	Value     []byte `gorm:"type:blob;not null"`
	UpdatedAt time.Time
}

// SQLiteKV is a KV backed by a local sqlite file, the default store for a
// single-user installation.
type SQLiteKV struct {
	db *gorm.DB
}

// gormSlogLogger integrates GORM with slog
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

// LogMode sets the logging level and returns a new interface instance.
func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	newlogger := *l
	newlogger.level = level
	return &newlogger
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace logs query errors; routine queries stay quiet at the default level.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) || l.level < logger.Error {
		return
	}
	sql, rows := fc()
	l.logger.ErrorContext(ctx, "sqlite query error",
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", time.Since(begin)),
		slog.String("error", err.Error()),
	)
}

// NewSQLiteKV opens (or creates) the sqlite file at path and migrates the
// records table.
func NewSQLiteKV(path string) (*SQLiteKV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: &gormSlogLogger{logger: middleware.Logger, level: logger.Error},
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open failed: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("sqlite migration failed: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var rec record
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		middleware.StorageErrors.WithLabelValues("sqlite", "get").Inc()
		return nil, err
	}
	return rec.Value, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		middleware.StorageErrors.WithLabelValues("sqlite", "set").Inc()
		return err
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&record{}, "key IN ?", keys).Error; err != nil {
		middleware.StorageErrors.WithLabelValues("sqlite", "delete").Inc()
		return err
	}
	return nil
}

func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
