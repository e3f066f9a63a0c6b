// Package lote handles batch spreadsheet correction commands
package lote

import (
	"github.com/spf13/cobra"

	"github.com/ggrighi15/Atualizar-Selic/cmd/root"
	"github.com/ggrighi15/Atualizar-Selic/internal/batch"
	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
)

var (
	input  string
	output string
)

// Cmd represents the lote command
var Cmd = &cobra.Command{
	Use:   "lote",
	Short: "Atualiza todos os valores de uma planilha (CSV ou XLSX)",
	Long: `Atualiza uma planilha inteira pelo índice escolhido. A planilha deve
conter as colunas data_inicial, data_final e valor; colunas extras são
preservadas. A saída recebe uma coluna valor_atualizado, em branco nas
linhas com dados inválidos.`,
	Run: loteFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Planilha de entrada (.csv ou .xlsx)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Planilha de saída (.csv ou .xlsx)")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func loteFunc(cmd *cobra.Command, args []string) {
	info := indexes.Lookup(root.SharedFlags.Indice)
	root.Log.WithFields(map[string]interface{}{
		"input":  input,
		"output": output,
		"indice": info.Name,
	}).Info("Batch correction requested")

	table, err := batch.ReadTable(input)
	if err != nil {
		root.Log.Fatalf("Error reading batch input: %v", err)
	}

	runner := batch.NewRunner(root.BuildProvider())
	summary, err := runner.Run(cmd.Context(), table, info.Name)
	if err != nil {
		root.Log.Fatalf("Error running batch: %v", err)
	}

	if err := table.Write(output); err != nil {
		root.Log.Fatalf("Error writing batch output: %v", err)
	}

	root.Log.Infof("Batch completed: %d rows, %d corrected, %d skipped",
		summary.Total, summary.Corrected, summary.Failed)
}
