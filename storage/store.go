package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tecla/domain"
	"tecla/logging"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger wraps the tecla logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

// LogMode sets the log level
func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

// Info logs info messages
func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

// Warn logs warn messages
func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

// Error logs error messages
func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries - only in debug mode
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

// newGormLogger creates a GORM logger that respects tecla's debug settings
func newGormLogger() logger.Interface {
	// TECLA_DEBUG is set by cmd/root.go when --debug is used
	if os.Getenv("TECLA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// Store provides thread-safe ACID access to persisted bindings
type Store struct {
	db *gorm.DB
}

// NewStore creates a new storage instance with WAL mode enabled
func NewStore(dbPath string) (*Store, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false, // Disable to avoid transaction conflicts
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000") // 5 second timeout
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&Binding{}); err != nil {
		return nil, fmt.Errorf("failed to migrate binding schema: %w", err)
	}

	// SQLite with WAL mode can handle multiple readers + 1 writer
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &Store{db: db}, nil
}

// AddBinding inserts a new binding; fails with domain.ErrBindingExists when
// the name is already taken
func (s *Store) AddBinding(ctx context.Context, binding domain.Binding) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&Binding{}).Where("name = ?", binding.Name).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check binding: %w", err)
			}
			if count > 0 {
				return fmt.Errorf("%w: %s", domain.ErrBindingExists, binding.Name)
			}

			row := fromDomain(binding)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create binding: %w", err)
			}
			return nil
		})
	}, 3)
}

// DeleteBinding removes a binding by name
func (s *Store) DeleteBinding(ctx context.Context, name string) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("name = ?", name).Delete(&Binding{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
			}
			return nil
		})
	}, 3)
}

// GetBinding retrieves a single binding by name
func (s *Store) GetBinding(ctx context.Context, name string) (*domain.Binding, error) {
	var row Binding

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
		}
		return nil, fmt.Errorf("failed to get binding: %w", err)
	}

	binding := row.toDomain()
	return &binding, nil
}

// ListBindings returns bindings ordered by name, optionally including
// disabled ones
func (s *Store) ListBindings(ctx context.Context, includeDisabled bool) ([]domain.Binding, error) {
	var rows []Binding

	err := withRetry(func() error {
		query := s.db.WithContext(ctx).Order("name ASC")
		if !includeDisabled {
			query = query.Where("enabled = ?", true)
		}
		return query.Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list bindings: %w", err)
	}

	bindings := make([]domain.Binding, len(rows))
	for i, row := range rows {
		bindings[i] = row.toDomain()
	}
	return bindings, nil
}

// UpdateBindingShortcut replaces the shortcut of an existing binding
func (s *Store) UpdateBindingShortcut(ctx context.Context, name string, shortcut domain.Shortcut) error {
	return s.updateBinding(ctx, name, map[string]interface{}{
		"key_code":       shortcut.KeyCode,
		"modifier_flags": uint(shortcut.Modifiers),
	})
}

// UpdateBindingCommand replaces the command of an existing binding
func (s *Store) UpdateBindingCommand(ctx context.Context, name, command string) error {
	return s.updateBinding(ctx, name, map[string]interface{}{"command": command})
}

// SetBindingEnabled toggles a binding on or off
func (s *Store) SetBindingEnabled(ctx context.Context, name string, enabled bool) error {
	return s.updateBinding(ctx, name, map[string]interface{}{"enabled": enabled})
}

// updateBinding applies column updates to one binding row
func (s *Store) updateBinding(ctx context.Context, name string, updates map[string]interface{}) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&Binding{}).Where("name = ?", name).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrBindingNotFound, name)
			}
			return nil
		})
	}, 3)
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries fn on SQLite busy/locked errors with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		// Check if it's a busy error
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
