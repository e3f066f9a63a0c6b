// Package indices lists the supported correction indices
package indices

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
)

// Cmd represents the indices command
var Cmd = &cobra.Command{
	Use:   "indices",
	Short: "Lista os índices de correção disponíveis",
	Run:   indicesFunc,
}

func indicesFunc(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ÍNDICE\tFONTE\tTAXA MENSAL\tSÉRIE DIÁRIA")
	for _, info := range indexes.All() {
		daily := "não"
		if info.SGSCode != 0 {
			daily = fmt.Sprintf("SGS %d", info.SGSCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%s\n", info.Name, info.Source, info.MonthlyRate*100, daily)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
