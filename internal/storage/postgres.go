package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"reskin-calc/internal/config"
)

// Quote statuses. A quote is born finalized (drafts live in Redis until the
// user commits), then moves to accepted when the legal offer is confirmed.
const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
	StatusAccepted  = "accepted"
)

var ErrQuoteNotFound = errors.New("quote not found")

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// Quote is a persisted specification/invoice record. SnapshotJSON holds the
// selection snapshot, TotalsJSON the raw engine breakdown. The unrounded
// sums are the source of truth, display rounding happens in the export.
type Quote struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	Title          string    `db:"title"`
	Status         string    `db:"status"`
	SnapshotJSON   []byte    `db:"snapshot_json"`
	TotalsJSON     []byte    `db:"totals_json"`
	GrandTotal     float64   `db:"grand_total"`
	MinimumApplied bool      `db:"minimum_applied"`
	PromoCode      string    `db:"promo_code"`
	CatalogSource  string    `db:"catalog_source"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func NewPostgresStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		retryPolicy,
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)

	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{
		db:     db,
		logger: logger,
	}, nil
}

func (s *PostgresStorage) SaveQuote(ctx context.Context, quote Quote) (int64, error) {
	const query = `
        INSERT INTO quotes (
            user_id, title, status, snapshot_json, totals_json,
            grand_total, minimum_applied, promo_code, catalog_source,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
        RETURNING id
    `

	var quoteID int64
	err := s.db.QueryRowContext(ctx, query,
		quote.UserID,
		quote.Title,
		quote.Status,
		quote.SnapshotJSON,
		quote.TotalsJSON,
		quote.GrandTotal,
		quote.MinimumApplied,
		quote.PromoCode,
		quote.CatalogSource,
		quote.CreatedAt,
	).Scan(&quoteID)

	if err != nil {
		return 0, fmt.Errorf("failed to save quote: %w", err)
	}

	return quoteID, nil
}

func (s *PostgresStorage) GetQuoteByID(ctx context.Context, quoteID int64) (*Quote, error) {
	const query = `SELECT * FROM quotes WHERE id = $1`

	var quote Quote
	err := s.db.GetContext(ctx, &quote, query, quoteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

func (s *PostgresStorage) ListQuotesByUser(ctx context.Context, userID int64) ([]Quote, error) {
	const query = `SELECT * FROM quotes WHERE user_id = $1 ORDER BY created_at DESC`

	var quotes []Quote
	err := s.db.SelectContext(ctx, &quotes, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	return quotes, nil
}

// IsFirstOrder reports whether the user has no quote past the draft stage.
// Drives the minimum-order floor.
func (s *PostgresStorage) IsFirstOrder(ctx context.Context, userID int64) (bool, error) {
	const query = `
        SELECT NOT EXISTS (
            SELECT 1 FROM quotes
            WHERE user_id = $1 AND status <> $2
        )
    `

	var first bool
	if err := s.db.GetContext(ctx, &first, query, userID, StatusDraft); err != nil {
		return false, fmt.Errorf("failed to check first order: %w", err)
	}
	return first, nil
}

// UpdateQuoteStatus moves a quote along the offer workflow, rejecting
// transitions the workflow does not allow.
func (s *PostgresStorage) UpdateQuoteStatus(ctx context.Context, quoteID int64, status string) error {
	quote, err := s.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return err
	}

	if !ValidTransition(quote.Status, status) {
		return fmt.Errorf("invalid status transition %q -> %q", quote.Status, status)
	}

	const query = `UPDATE quotes SET status = $1, updated_at = $2 WHERE id = $3`
	if _, err := s.db.ExecContext(ctx, query, status, time.Now().UTC(), quoteID); err != nil {
		return fmt.Errorf("failed to update quote status: %w", err)
	}

	s.logger.Info("Quote status updated",
		zap.Int64("quote_id", quoteID),
		zap.String("from", quote.Status),
		zap.String("to", status))
	return nil
}

// ValidTransition encodes the save -> finalize -> accept workflow.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusFinalized
	case StatusFinalized:
		return to == StatusAccepted
	default:
		return false
	}
}

// DB exposes the underlying handle for the migrator.
func (s *PostgresStorage) DB() *sql.DB {
	return s.db.DB
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
