package writer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rickgao/moex-quotes/internal/model"
)

// DB is the subset of *pgxpool.Pool used by ArchiveWriter.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

const createQuotesTable = `
	CREATE TABLE IF NOT EXISTS iss_quotes (
		run_id     UUID    NOT NULL,
		report     TEXT    NOT NULL,
		row_num    INTEGER NOT NULL,
		secid      TEXT    NOT NULL,
		stamp      TEXT    NOT NULL,
		price_text TEXT    NOT NULL,
		price      NUMERIC,
		fetched_at BIGINT  NOT NULL,
		PRIMARY KEY (run_id, report, row_num)
	)
`

const insertQuote = `
	INSERT INTO iss_quotes (run_id, report, row_num, secid, stamp, price_text, price, fetched_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (run_id, report, row_num) DO NOTHING
`

// ArchiveWriter inserts report quotes into the iss_quotes table.
type ArchiveWriter struct {
	db     DB
	logger *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewArchiveWriter creates a new ArchiveWriter.
func NewArchiveWriter(db DB, logger *slog.Logger) *ArchiveWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArchiveWriter{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the iss_quotes table if it does not exist.
func (w *ArchiveWriter) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.Exec(ctx, createQuotesTable); err != nil {
		return fmt.Errorf("create iss_quotes: %w", err)
	}
	return nil
}

// WriteQuotes inserts quotes in a single batch.
func (w *ArchiveWriter) WriteQuotes(ctx context.Context, quotes []model.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	rows := make([]quoteRow, len(quotes))
	for i, q := range quotes {
		rows[i] = transform(q)
	}

	start := time.Now()

	conflicts, err := w.batchInsert(ctx, rows)
	if err != nil {
		w.mu.Lock()
		w.metrics.Errors++
		w.mu.Unlock()
		return fmt.Errorf("archive quotes: %w", err)
	}

	w.mu.Lock()
	w.metrics.Inserts += int64(len(rows) - conflicts)
	w.metrics.Conflicts += int64(conflicts)
	w.mu.Unlock()

	w.logger.Debug("archived quotes",
		"count", len(rows),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return nil
}

// Stats returns current metrics.
func (w *ArchiveWriter) Stats() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// transform converts a model.Quote to a quoteRow.
func transform(q model.Quote) quoteRow {
	return quoteRow{
		RunID:     q.RunID,
		Report:    q.Report,
		Row:       q.Row,
		SecID:     q.SecID,
		Stamp:     q.Stamp,
		PriceText: q.PriceText,
		Price:     q.Price,
		FetchedAt: q.FetchedAt,
	}
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *ArchiveWriter) batchInsert(ctx context.Context, rows []quoteRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(insertQuote,
			r.RunID, r.Report, r.Row, r.SecID, r.Stamp, r.PriceText, r.Price, r.FetchedAt)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
