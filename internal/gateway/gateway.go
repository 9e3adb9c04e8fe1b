// Package gateway is the single access point to the relational store. It owns
// an anonymous-scope handle for public reads and an elevated handle for
// administrative paths, and degrades to an inert placeholder when no database
// credential is configured so the process can still start and serve.
package gateway

import (
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/rohitgunthal18/pixico-core/internal/config"
	"github.com/rohitgunthal18/pixico-core/internal/database"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnavailable is returned by every query issued against an inert gateway.
// Loaders substitute empty results instead of propagating it.
var ErrUnavailable = errors.New("gateway: no database credential configured")

type Gateway struct {
	anon     *gorm.DB
	elevated *gorm.DB
	inert    bool
}

// New connects the configured handles. A placeholder DSN yields an inert
// gateway rather than an error; a missing elevated DSN falls back to the
// anonymous handle (reduced capability, not a failure).
func New(cfg *config.AppConfig, logger *zap.Logger) (*Gateway, error) {
	if cfg.UsingPlaceholderDSN {
		logger.Warn("no database credential configured, gateway is inert; all data sections will render empty")
		return NewInert(), nil
	}

	anon, err := database.Open(cfg, cfg.DSN)
	if err != nil {
		return nil, err
	}

	g := &Gateway{anon: anon}
	if cfg.ServiceDSN != "" && cfg.ServiceDSN != cfg.DSN {
		elevated, err := database.Open(cfg, cfg.ServiceDSN)
		if err != nil {
			logger.Warn("elevated database handle unavailable, admin paths fall back to the anonymous handle", zap.Error(err))
		} else {
			g.elevated = elevated
		}
	}

	if err := database.Migrate(g.writerDB()); err != nil {
		return nil, err
	}
	return g, nil
}

// NewInert returns a gateway whose queries all fail with ErrUnavailable.
func NewInert() *Gateway { return &Gateway{inert: true} }

// NewWithDB wraps an already-open handle as a single-scope gateway. Reader and
// Writer both resolve to db.
func NewWithDB(db *gorm.DB) *Gateway { return &Gateway{anon: db} }

// Inert reports whether the gateway has no backing database.
func (g *Gateway) Inert() bool { return g.inert }

// Reader returns the anonymous-scope handle.
func (g *Gateway) Reader() (*gorm.DB, error) {
	if g.inert {
		return nil, ErrUnavailable
	}
	return g.anon, nil
}

// Writer returns the elevated handle, falling back to the anonymous one.
func (g *Gateway) Writer() (*gorm.DB, error) {
	if g.inert {
		return nil, ErrUnavailable
	}
	return g.writerDB(), nil
}

func (g *Gateway) writerDB() *gorm.DB {
	if g.elevated != nil {
		return g.elevated
	}
	return g.anon
}

// Published scopes a query to rows visible on public pages. Draft rows must
// never reach public renderers.
func Published(tx *gorm.DB) *gorm.DB {
	return tx.Where("status = ?", models.StatusPublished)
}

// First fetches a single row, distinguishing not-found (nil, nil) from errors.
func First[T any](tx *gorm.DB, conds ...interface{}) (*T, error) {
	var row T
	if err := tx.First(&row, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// IsDuplicateKey reports whether err is a MySQL unique-constraint violation.
// Slug columns carry unique indexes, so concurrent creates can race past a
// count check and land here.
func IsDuplicateKey(err error) bool {
	var myErr *mysqlDriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// Find fetches a list. The result is never nil, so handlers always serialize
// an empty array for zero rows.
func Find[T any](tx *gorm.DB) ([]T, error) {
	rows := make([]T, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
