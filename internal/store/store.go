// Package store owns the donor, donation, project, volunteer and volunteer
// project collections and applies their referential and cascade rules.
//
// Every operation runs alone: calls are serialized on the store and each
// mutation commits in a single transaction before it returns. Cascades and
// reference checks happen here rather than in database constraints, so the
// sqlite and postgres backends behave the same.
package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Store struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
	mu     sync.Mutex
}

type Option func(*Store)

// WithClock replaces the clock used to stamp new donations.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(db *gorm.DB, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		db:     db,
		logger: logger.Named("store"),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// transact runs fn inside one transaction. Any error rolls back every write
// fn made.
func (s *Store) transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Store) read(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.db.WithContext(ctx))
}

const pingTimeout = 5 * time.Second

// Ping checks that the database answers within a few seconds.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Exists returns a NotFoundError when no record of kind has id. Related rows
// are not resolved.
func (s *Store) Exists(ctx context.Context, kind Kind, id uint) error {
	model, err := kind.model()
	if err != nil {
		return err
	}

	return s.read(ctx, func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return &NotFoundError{Kind: kind, ID: id}
		}

		return nil
	})
}

func first(tx *gorm.DB, kind Kind, id uint, dest interface{}) error {
	if err := tx.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Kind: kind, ID: id}
		}
		return err
	}
	return nil
}

func requireRef(tx *gorm.DB, kind Kind, model interface{}, id uint) error {
	var count int64

	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return &ReferenceError{Kind: kind, ID: id}
	}

	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return strings.ToLower(f.Name)
	})
	return v
}

func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Reason: reasonFor(verrs[0].Tag())}
	}

	return &ValidationError{Field: "input", Reason: err.Error()}
}

func reasonFor(tag string) string {
	switch tag {
	case "required":
		return reasonRequired
	case "gte":
		return "must not be negative"
	default:
		return "failed " + tag
	}
}

// applyText overwrites dst when v carries a non-blank value.
func applyText(dst *string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		*dst = trimmed
	}
}
