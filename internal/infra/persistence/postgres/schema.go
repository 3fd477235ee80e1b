package postgres

import (
	"context"
	"log/slog"
	"sync"

	"housekeep/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SchemaStore applies the database schema idempotently. Repeated Apply calls
// within a process are collapsed to one migration run; AutoMigrate itself is
// additive, so re-running against an existing schema is a no-op.
type SchemaStore struct {
	db     *gorm.DB
	logger *slog.Logger

	once sync.Once
	err  error
}

// NewSchemaStore is the constructor for SchemaStore.
func NewSchemaStore(db *gorm.DB, logger *slog.Logger) *SchemaStore {
	return &SchemaStore{
		db:     db,
		logger: logger,
	}
}

// managedModels lists every table the schema store owns, in dependency order.
func managedModels() []any {
	return []any{
		&model.UserModel{},
		&model.HomeModel{},
		&model.RawPropertyModel{},
		&model.AlertModel{},
	}
}

// Apply creates or extends the schema. Safe to call more than once.
func (s *SchemaStore) Apply(ctx context.Context) error {
	s.once.Do(func() {
		if err := s.db.WithContext(ctx).AutoMigrate(managedModels()...); err != nil {
			s.err = errors.Wrap(err, "failed to apply schema")

			return
		}

		s.logger.LogAttrs(ctx, slog.LevelInfo, "schema applied",
			slog.Int("tables", len(managedModels())),
		)
	})

	return s.err
}
