package batch

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ggrighi15/Atualizar-Selic/internal/calcerror"
	"github.com/ggrighi15/Atualizar-Selic/internal/engine"
	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
	"github.com/ggrighi15/Atualizar-Selic/internal/moneyutils"
)

// ResultColumn is the header of the appended corrected-amount column.
const ResultColumn = "valor_atualizado"

// columnAliases maps each logical column to the substrings accepted in a
// header, matched case-insensitively. Uploaded spreadsheets name these
// columns inconsistently (data_inicial, Data Início, inicio, ...).
var columnAliases = map[string][]string{
	"data_inicial": {"data_in", "inicio", "início"},
	"data_final":   {"data_f", "fim", "final"},
	"valor":        {"valor", "montante"},
}

// columns holds the resolved positions of the three required logical columns.
type columns struct {
	start  int
	end    int
	amount int
}

// resolveColumns maps the table headers to the required logical columns.
// Matching is case-insensitive and substring-based; the first header matching
// an alias wins. A column that cannot be resolved aborts the whole batch with
// MissingColumnError.
func resolveColumns(headers []string) (columns, error) {
	find := func(logical string) (int, error) {
		for i, header := range headers {
			h := strings.ToLower(strings.TrimSpace(header))
			for _, alias := range columnAliases[logical] {
				if strings.Contains(h, alias) {
					return i, nil
				}
			}
		}
		return 0, &calcerror.MissingColumnError{Column: logical, Headers: headers}
	}

	var cols columns
	var err error
	if cols.start, err = find("data_inicial"); err != nil {
		return columns{}, err
	}
	if cols.end, err = find("data_final"); err != nil {
		return columns{}, err
	}
	if cols.amount, err = find("valor"); err != nil {
		return columns{}, err
	}
	return cols, nil
}

// Summary reports the outcome of one batch run.
type Summary struct {
	Total     int
	Corrected int
	Failed    int
}

// Runner executes the correction engine over a table, one row at a time, in
// input order.
type Runner struct {
	provider indexes.Provider
}

// NewRunner returns a runner resolving factors through the given provider.
func NewRunner(provider indexes.Provider) *Runner {
	return &Runner{provider: provider}
}

// Run corrects every row of the table by the given index and appends the
// ResultColumn. A row whose dates or amount fail normalization, or whose
// correction fails, gets a blank result cell and processing continues; no row
// failure aborts the batch. The table is mutated in place and row order is
// preserved so the output round-trips against the input spreadsheet.
func (r *Runner) Run(ctx context.Context, table *Table, index indexes.Name) (Summary, error) {
	cols, err := resolveColumns(table.Headers)
	if err != nil {
		return Summary{}, err
	}

	// One factor resolution per distinct interval within this run; daily
	// series fetches are not repeated for identical rows.
	eng := engine.New(&cachingProvider{inner: r.provider})

	table.Headers = append(table.Headers, ResultColumn)
	summary := Summary{Total: len(table.Rows)}

	for i, row := range table.Rows {
		corrected := r.correctRow(ctx, eng, row, cols, index, i)
		table.Rows[i] = append(row, corrected)
		if corrected == "" {
			summary.Failed++
		} else {
			summary.Corrected++
		}
	}

	log.WithFields(logrus.Fields{
		"total":     summary.Total,
		"corrected": summary.Corrected,
		"failed":    summary.Failed,
	}).Info("Batch correction finished")
	return summary, nil
}

// correctRow corrects one row, returning the formatted amount or an empty
// string on any failure.
func (r *Runner) correctRow(ctx context.Context, eng *engine.Engine, row []string, cols columns, index indexes.Name, rowIdx int) string {
	cell := func(col int) string {
		if col < len(row) {
			return row[col]
		}
		return ""
	}

	req, err := engine.ParseRequest(cell(cols.start), cell(cols.end), cell(cols.amount), index)
	if err != nil {
		log.WithError(err).WithField("row", rowIdx+1).Warn("Skipping row: invalid input")
		return ""
	}

	corrected, err := eng.Correct(ctx, req)
	if err != nil {
		log.WithError(err).WithField("row", rowIdx+1).Warn("Skipping row: correction failed")
		return ""
	}

	return moneyutils.Format(corrected)
}

// cachingProvider memoizes factors per (index, interval) for the lifetime of
// one batch run. Rows run strictly in order on one goroutine, so no locking
// is needed; the cache never outlives the run, so results match an uncached
// execution.
type cachingProvider struct {
	inner indexes.Provider
	cache map[string]cachedFactor
}

type cachedFactor struct {
	factor float64
	err    error
}

func (p *cachingProvider) Factor(ctx context.Context, name indexes.Name, start, end time.Time) (float64, error) {
	key := string(name) + "|" + start.Format("20060102") + "|" + end.Format("20060102")

	if p.cache == nil {
		p.cache = make(map[string]cachedFactor)
	}
	if hit, ok := p.cache[key]; ok {
		return hit.factor, hit.err
	}

	factor, err := p.inner.Factor(ctx, name, start, end)
	p.cache[key] = cachedFactor{factor: factor, err: err}
	return factor, err
}
