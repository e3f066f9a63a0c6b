package batch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggrighi15/Atualizar-Selic/internal/calcerror"
	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
	"github.com/ggrighi15/Atualizar-Selic/internal/moneyutils"
)

// countingProvider doubles the principal and counts resolutions.
type countingProvider struct {
	calls int
}

func (p *countingProvider) Factor(_ context.Context, _ indexes.Name, _, _ time.Time) (float64, error) {
	p.calls++
	return 2.0, nil
}

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantErr string
	}{
		{"Canonical names", []string{"data_inicial", "data_final", "valor"}, ""},
		{"Mixed case", []string{"Data_Inicial", "DATA_FINAL", "Valor"}, ""},
		{"Alias names", []string{"inicio", "fim", "montante"}, ""},
		{"Spaced names", []string{"Data Início", "Data Final", "Valor (R$)"}, ""},
		{"Extra columns around", []string{"processo", "data_inicial", "obs", "data_final", "valor"}, ""},
		{"Missing start", []string{"data_final", "valor"}, "data_inicial"},
		{"Missing end", []string{"data_inicial", "valor"}, "data_final"},
		{"Missing amount", []string{"data_inicial", "data_final"}, "valor"},
		{"Empty headers", []string{}, "data_inicial"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolveColumns(tc.headers)

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var missing *calcerror.MissingColumnError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.wantErr, missing.Column)
		})
	}
}

func TestRunIsolatesRowFailures(t *testing.T) {
	table := &Table{
		Headers: []string{"data_inicial", "data_final", "valor"},
		Rows: [][]string{
			{"15/03/2023", "09/07/2025", "1.000,00"},
			{"15/03/2023", "09/07/2025", "not-a-number,,"},
			{"01/01/2024", "01/06/2024", "500,00"},
		},
	}

	runner := NewRunner(&countingProvider{})
	summary, err := runner.Run(context.Background(), table, indexes.Selic)
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 3, Corrected: 2, Failed: 1}, summary)

	// All three rows survive, in input order, with the result appended.
	require.Len(t, table.Rows, 3)
	assert.Equal(t, ResultColumn, table.Headers[len(table.Headers)-1])
	assert.Equal(t, "2.000,00", table.Rows[0][3])
	assert.Equal(t, "", table.Rows[1][3])
	assert.Equal(t, "1.000,00", table.Rows[2][3])
}

func TestRunRejectsUnmappableHeaders(t *testing.T) {
	table := &Table{
		Headers: []string{"a", "b", "c"},
		Rows:    [][]string{{"15/03/2023", "09/07/2025", "1.000,00"}},
	}

	runner := NewRunner(&countingProvider{})
	_, err := runner.Run(context.Background(), table, indexes.Selic)

	var missing *calcerror.MissingColumnError
	require.ErrorAs(t, err, &missing)
	// The batch is rejected before any row processing: no result column.
	assert.NotContains(t, table.Headers, ResultColumn)
	assert.Len(t, table.Rows[0], 3)
}

func TestRunPreservesExtraColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"processo", "data_inicial", "data_final", "valor", "obs"},
		Rows: [][]string{
			{"2023-001", "15/03/2023", "09/07/2025", "100,00", "primeira"},
			{"2023-002", "31/02/2023", "09/07/2025", "100,00", "data ruim"},
		},
	}

	runner := NewRunner(&countingProvider{})
	_, err := runner.Run(context.Background(), table, indexes.Selic)
	require.NoError(t, err)

	assert.Equal(t, []string{"2023-001", "15/03/2023", "09/07/2025", "100,00", "primeira", "200,00"}, table.Rows[0])
	assert.Equal(t, []string{"2023-002", "31/02/2023", "09/07/2025", "100,00", "data ruim", ""}, table.Rows[1])
}

func TestRunHandlesShortAndInvertedRows(t *testing.T) {
	table := &Table{
		Headers: []string{"data_inicial", "data_final", "valor"},
		Rows: [][]string{
			{"15/03/2023"},
			{"01/01/2021", "01/01/2020", "100,00"},
			{"01/01/2020", "01/01/2021", "0,00"},
		},
	}

	runner := NewRunner(&countingProvider{})
	summary, err := runner.Run(context.Background(), table, indexes.Selic)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Failed)
	for i, row := range table.Rows {
		assert.Equal(t, "", row[len(row)-1], "row %d must have a blank result", i+1)
	}
}

func TestRunResolvesEachIntervalOnce(t *testing.T) {
	table := &Table{
		Headers: []string{"data_inicial", "data_final", "valor"},
		Rows: [][]string{
			{"15/03/2023", "09/07/2025", "100,00"},
			{"15/03/2023", "09/07/2025", "200,00"},
			{"15/03/2023", "09/07/2025", "300,00"},
			{"01/01/2024", "01/06/2024", "400,00"},
		},
	}

	provider := &countingProvider{}
	runner := NewRunner(provider)
	summary, err := runner.Run(context.Background(), table, indexes.Selic)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Corrected)
	// Two distinct intervals, so exactly two factor resolutions.
	assert.Equal(t, 2, provider.calls)
}

func TestRunFormatsWithBrazilianConvention(t *testing.T) {
	table := &Table{
		Headers: []string{"data_inicial", "data_final", "valor"},
		Rows:    [][]string{{"15/03/2023", "09/07/2025", "1.234.567,89"}},
	}

	runner := NewRunner(&countingProvider{})
	_, err := runner.Run(context.Background(), table, indexes.Selic)
	require.NoError(t, err)

	parsed, err := moneyutils.Parse(table.Rows[0][3])
	require.NoError(t, err)
	assert.Equal(t, "2469135.78", parsed.String())
}
