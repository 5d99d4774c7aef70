package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/moex-quotes/internal/api"
	"github.com/rickgao/moex-quotes/internal/model"
)

// Fetcher loads one ISS section as a table.
type Fetcher interface {
	GetBoardSecurities(ctx context.Context, opts api.BoardSecuritiesOptions) (*api.Table, error)
}

// Sink receives the quotes of a report after it has been printed.
type Sink interface {
	WriteQuotes(ctx context.Context, quotes []model.Quote) error
}

// Row is one report line.
type Row struct {
	Stamp string
	SecID string
	Price string
}

// String formats the row as printed.
func (r Row) String() string {
	return r.Stamp + " " + r.SecID + " " + r.Price
}

// ToQuote converts a row into a model.Quote.
func (r Row) ToQuote(runID uuid.UUID, report string, pos int, fetchedAt int64) model.Quote {
	return model.Quote{
		RunID:     runID,
		Report:    report,
		Row:       pos,
		SecID:     r.SecID,
		Stamp:     r.Stamp,
		PriceText: r.Price,
		Price:     model.ParsePrice(r.Price),
		FetchedAt: fetchedAt,
	}
}

// Runner executes report definitions against a Fetcher.
type Runner struct {
	fetcher    Fetcher
	out        io.Writer
	securities []string
	sinks      []Sink
	runID      uuid.UUID
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithSinks adds quote sinks.
func WithSinks(sinks ...Sink) Option {
	return func(r *Runner) {
		r.sinks = append(r.sinks, sinks...)
	}
}

// WithRunID sets the run ID attached to quotes.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) {
		r.runID = id
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner printing to out.
func NewRunner(fetcher Fetcher, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		fetcher:    fetcher,
		out:        out,
		securities: api.DefaultSecurities,
		runID:      uuid.New(),
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunAll runs defs in order, separated by a blank line.
// It stops at the first failing report.
func (r *Runner) RunAll(ctx context.Context, defs ...Definition) error {
	for i, def := range defs {
		if i > 0 {
			if _, err := io.WriteString(r.out, "\n"); err != nil {
				return fmt.Errorf("write separator: %w", err)
			}
		}
		if err := r.Run(ctx, def); err != nil {
			return err
		}
	}
	return nil
}

// Run fetches, resolves and prints a single report, then hands its rows to
// the configured sinks.
func (r *Runner) Run(ctx context.Context, def Definition) error {
	start := r.now()

	table, err := r.fetcher.GetBoardSecurities(ctx, api.BoardSecuritiesOptions{
		Securities: r.securities,
		Section:    def.Section,
		Columns:    def.Columns(),
	})
	if err != nil {
		return fmt.Errorf("%s report: %w", def.Name, err)
	}
	fetchedAt := r.now().UnixMicro()

	rows, err := Rows(table, def)
	if err != nil {
		return fmt.Errorf("%s report: %w", def.Name, err)
	}

	var buf bytes.Buffer
	Render(&buf, def, rows)
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%s report: write output: %w", def.Name, err)
	}

	r.logger.Info("report printed",
		"report", def.Name,
		"rows", len(rows),
		"duration", r.now().Sub(start),
	)

	if len(r.sinks) == 0 || len(rows) == 0 {
		return nil
	}

	quotes := make([]model.Quote, len(rows))
	for i, row := range rows {
		quotes[i] = row.ToQuote(r.runID, def.Name, i, fetchedAt)
	}
	for _, sink := range r.sinks {
		if err := sink.WriteQuotes(ctx, quotes); err != nil {
			return fmt.Errorf("%s report: %w", def.Name, err)
		}
	}

	return nil
}

// Rows extracts the report rows from table in table order. All columns are
// resolved before any row is read.
func Rows(table *api.Table, def Definition) ([]Row, error) {
	idx, err := table.Resolve(def.Columns()...)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(table.Data))
	for i, cells := range table.Data {
		if len(cells) != len(table.Columns) {
			return nil, &api.SchemaError{
				Section: table.Section,
				Reason:  fmt.Sprintf("row %d has %d cells, want %d", i, len(cells), len(table.Columns)),
			}
		}
		rows[i] = Row{
			Stamp: api.FormatCell(cells[idx[0]]),
			SecID: api.FormatCell(cells[idx[1]]),
			Price: api.FormatCell(cells[idx[2]]),
		}
	}
	return rows, nil
}

// Render writes a blank line, the header and one line per row. Every line,
// the leading blank one included, ends in a bare "\n".
func Render(w *bytes.Buffer, def Definition, rows []Row) {
	w.WriteString("\n")
	w.WriteString(def.Header)
	w.WriteString("\n")
	for _, row := range rows {
		w.WriteString(row.String())
		w.WriteString("\n")
	}
}
