// Package exemplo writes a template spreadsheet with the required columns
package exemplo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/ggrighi15/Atualizar-Selic/cmd/root"
	"github.com/ggrighi15/Atualizar-Selic/internal/batch"
)

var output string

// exampleRow is one row of the template spreadsheet. The csv tags name the
// three required logical columns exactly as the batch runner resolves them.
type exampleRow struct {
	DataInicial string `csv:"data_inicial"`
	DataFinal   string `csv:"data_final"`
	Valor       string `csv:"valor"`
}

var exampleRows = []*exampleRow{
	{DataInicial: "15/03/2023", DataFinal: "09/07/2025", Valor: "1.000,00"},
}

// Cmd represents the exemplo command
var Cmd = &cobra.Command{
	Use:   "exemplo",
	Short: "Gera uma planilha de exemplo com as colunas obrigatórias",
	Long: `Gera uma planilha modelo com as colunas data_inicial, data_final e
valor preenchidas com uma linha de exemplo, pronta para o comando lote.`,
	Run: exemploFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "exemplo_atualizacao.csv", "Arquivo de saída (.csv ou .xlsx)")
}

func exemploFunc(cmd *cobra.Command, args []string) {
	if strings.EqualFold(filepath.Ext(output), ".xlsx") {
		table := &batch.Table{
			Headers: []string{"data_inicial", "data_final", "valor"},
		}
		for _, row := range exampleRows {
			table.Rows = append(table.Rows, []string{row.DataInicial, row.DataFinal, row.Valor})
		}
		if err := table.Write(output); err != nil {
			root.Log.Fatalf("Error writing example spreadsheet: %v", err)
		}
	} else {
		file, err := os.Create(output)
		if err != nil {
			root.Log.Fatalf("Error creating example file: %v", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				root.Log.Warnf("Failed to close file: %v", err)
			}
		}()
		if err := gocsv.MarshalFile(&exampleRows, file); err != nil {
			root.Log.Fatalf("Error writing example CSV: %v", err)
		}
	}

	fmt.Printf("Planilha de exemplo gravada em %s\n", output)
}
