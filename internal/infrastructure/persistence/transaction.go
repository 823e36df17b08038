package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/servicehub/internal/domain/listing"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"gorm.io/gorm"
)

type txKey struct{}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a GORM backed Transactor
func NewTransactor(db *gorm.DB) txn.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn in a transaction. A nested call joins the outer transaction.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or db bound to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// translate maps GORM errors onto application errors
func translate(err error, resource, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Wrap(apperror.KindDuplicate, err, "%s already exists", resource)
	default:
		return fmt.Errorf("%s query failed: %w", resource, err)
	}
}

// paginate counts the rows matched by q and loads one page of them into dest
func paginate(q *gorm.DB, page *listing.Page, fallbackOrder string, dest interface{}) (int64, error) {
	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, err
	}

	err := base.Order(page.OrderClause(fallbackOrder)).
		Limit(page.EffectiveLimit()).
		Offset(page.Offset).
		Find(dest).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

type statusCount struct {
	Status string
	Count  int64
}

// countByStatus groups the rows matched by q by their status column
func countByStatus(q *gorm.DB) (map[string]int64, error) {
	var rows []statusCount
	if err := q.Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}

func likePattern(s string) string {
	return "%" + s + "%"
}
