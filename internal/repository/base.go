package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefrontlabs/catalog-backend/internal/database"
)

const (
	// DefaultPageSize applies when a caller passes limit <= 0.
	DefaultPageSize = 20
	// MaxPageSize caps any requested limit. The cap is part of the contract.
	MaxPageSize = 100
)

// ErrAmbiguousPredicate is returned when an update predicate matches more
// than one row. Updates must target a single row by primary or unique key.
var ErrAmbiguousPredicate = errors.New("predicate matched more than one row")

// Entity describes a mapped table: its name and primary-key column. Every
// model implements it once, which keeps the generic layer reflection-free.
type Entity interface {
	TableName() string
	PrimaryKeyColumn() string
}

// Predicate is a parameterized WHERE fragment. The zero value matches all
// rows for reads and is rejected for deletes by the store layer.
type Predicate struct {
	Query string
	Args  []interface{}
}

func Where(query string, args ...interface{}) Predicate {
	return Predicate{Query: query, Args: args}
}

func ByID(id interface{}) Predicate {
	return Predicate{Query: "id = ?", Args: []interface{}{id}}
}

func (p Predicate) empty() bool { return p.Query == "" }

func (p Predicate) apply(db *gorm.DB) *gorm.DB {
	if p.empty() {
		return db
	}
	return db.Where(p.Query, p.Args...)
}

// Repository translates typed entity operations into store statements. All
// operations accept an optional open transaction handle; passing nil runs
// the statement on the manager's pooled handle in its own implicit scope.
type Repository[T Entity] struct {
	mgr *database.Manager
}

func NewRepository[T Entity](mgr *database.Manager) *Repository[T] {
	return &Repository[T]{mgr: mgr}
}

// Manager exposes the session manager for specific repositories that need
// to open a multi-statement unit of work.
func (r *Repository[T]) Manager() *database.Manager {
	return r.mgr
}

func (r *Repository[T]) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.mgr.DB().WithContext(ctx)
}

// Insert creates the row and returns it fully materialized, including
// server-assigned id and defaults.
func (r *Repository[T]) Insert(ctx context.Context, tx *gorm.DB, entity *T) (*T, error) {
	db := r.conn(ctx, tx)
	if err := db.Clauses(clause.Returning{}).Create(entity).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return entity, nil
}

// Update applies a partial field set to the row matching pred and returns
// the updated row, or nil when no row matched. A predicate matching more
// than one row fails with ErrAmbiguousPredicate and nothing is persisted:
// the multiplicity check runs inside a unit of work, so a standalone call
// opens its own and rolls back on failure, and a call inside a caller's tx
// poisons that tx instead.
func (r *Repository[T]) Update(ctx context.Context, tx *gorm.DB, pred Predicate, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return r.SelectOne(ctx, tx, pred)
	}
	if tx == nil {
		var row *T
		err := r.mgr.Transaction(ctx, func(tx *gorm.DB) error {
			var err error
			row, err = r.update(ctx, tx, pred, fields)
			return err
		})
		if err != nil {
			return nil, err
		}
		return row, nil
	}
	return r.update(ctx, tx, pred, fields)
}

func (r *Repository[T]) update(ctx context.Context, tx *gorm.DB, pred Predicate, fields map[string]interface{}) (*T, error) {
	var rows []T
	db := pred.apply(r.conn(ctx, tx).Model(&rows).Clauses(clause.Returning{}))
	if err := db.Updates(fields).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return &rows[0], nil
	default:
		return nil, ErrAmbiguousPredicate
	}
}

// SelectOne returns the first row matching pred, or nil when none does.
func (r *Repository[T]) SelectOne(ctx context.Context, tx *gorm.DB, pred Predicate) (*T, error) {
	var rows []T
	db := pred.apply(r.conn(ctx, tx))
	if err := db.Limit(1).Find(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// SelectAll returns every row matching pred; the zero predicate returns the
// full table.
func (r *Repository[T]) SelectAll(ctx context.Context, tx *gorm.DB, pred Predicate) ([]T, error) {
	var rows []T
	db := pred.apply(r.conn(ctx, tx))
	if err := db.Find(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

// Exists reports whether any row matches pred.
func (r *Repository[T]) Exists(ctx context.Context, tx *gorm.DB, pred Predicate) (bool, error) {
	var count int64
	db := pred.apply(r.conn(ctx, tx).Model(new(T)))
	if err := db.Count(&count).Error; err != nil {
		return false, database.TranslateError(err)
	}
	return count > 0, nil
}

// Delete removes the rows matching pred and returns the first deleted row
// for confirmation messaging, or nil when nothing matched.
func (r *Repository[T]) Delete(ctx context.Context, tx *gorm.DB, pred Predicate) (*T, error) {
	var rows []T
	db := pred.apply(r.conn(ctx, tx).Clauses(clause.Returning{}))
	if err := db.Delete(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Paginate returns one page ordered by primary key ascending.
func (r *Repository[T]) Paginate(ctx context.Context, tx *gorm.DB, offset, limit int) ([]T, error) {
	var rows []T
	var zero T
	db := r.conn(ctx, tx).
		Order(zero.PrimaryKeyColumn() + " ASC").
		Offset(normalizeOffset(offset)).
		Limit(normalizeLimit(limit))
	if err := db.Find(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

// DetailOne reads the row where column equals value together with the named
// relations, all in one logical read.
func (r *Repository[T]) DetailOne(ctx context.Context, tx *gorm.DB, column string, value interface{}, relations ...string) (*T, error) {
	var rows []T
	db := r.conn(ctx, tx)
	for _, rel := range relations {
		db = db.Preload(rel)
	}
	db = db.Where(fmt.Sprintf("%s = ?", column), value).Limit(1)
	if err := db.Find(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// DetailList reads one page ordered by primary key ascending, eager-loading
// the named relations.
func (r *Repository[T]) DetailList(ctx context.Context, tx *gorm.DB, offset, limit int, relations ...string) ([]T, error) {
	var rows []T
	var zero T
	db := r.conn(ctx, tx)
	for _, rel := range relations {
		db = db.Preload(rel)
	}
	db = db.
		Order(zero.PrimaryKeyColumn() + " ASC").
		Offset(normalizeOffset(offset)).
		Limit(normalizeLimit(limit))
	if err := db.Find(&rows).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return rows, nil
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
