// Package atualizar handles single-entry correction commands
package atualizar

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ggrighi15/Atualizar-Selic/cmd/root"
	"github.com/ggrighi15/Atualizar-Selic/internal/calcerror"
	"github.com/ggrighi15/Atualizar-Selic/internal/engine"
	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
	"github.com/ggrighi15/Atualizar-Selic/internal/moneyutils"
)

var (
	dataInicial string
	dataFinal   string
	valor       string
)

// Cmd represents the atualizar command
var Cmd = &cobra.Command{
	Use:   "atualizar",
	Short: "Atualiza um único valor entre duas datas",
	Long: `Atualiza um único valor monetário pelo índice escolhido.
Datas no formato dd/mm/aaaa (ou apenas dígitos, ex: 15032023) e valor no
padrão brasileiro (ex: 1.000,00).`,
	Run: atualizarFunc,
}

func init() {
	Cmd.Flags().StringVar(&dataInicial, "data-inicial", "", "Data inicial (dd/mm/aaaa)")
	Cmd.Flags().StringVar(&dataFinal, "data-final", "", "Data final (dd/mm/aaaa)")
	Cmd.Flags().StringVar(&valor, "valor", "", "Valor base (ex: 1.000,00)")
	_ = Cmd.MarkFlagRequired("data-inicial")
	_ = Cmd.MarkFlagRequired("data-final")
	_ = Cmd.MarkFlagRequired("valor")
}

func atualizarFunc(cmd *cobra.Command, args []string) {
	info := indexes.Lookup(root.SharedFlags.Indice)
	root.Log.WithField("indice", info.Name).Info("Single-entry correction requested")

	req, err := engine.ParseRequest(dataInicial, dataFinal, valor, info.Name)
	if err != nil {
		fmt.Println(userMessage(err))
		return
	}

	eng := engine.New(root.BuildProvider())
	corrected, err := eng.Correct(cmd.Context(), req)
	if err != nil {
		fmt.Println(userMessage(err))
		return
	}

	fmt.Printf("Valor atualizado: R$ %s\n", moneyutils.Format(corrected))
}

// userMessage maps a classified failure to the message shown to the user.
func userMessage(err error) string {
	var inverted *calcerror.InvertedIntervalError
	var noData *calcerror.NoIndexDataError
	var unavailable *calcerror.SourceUnavailableError

	switch {
	case errors.As(err, &inverted):
		return "A data final deve ser posterior à data inicial."
	case errors.As(err, &noData):
		return "Sem dados do índice para o período informado."
	case errors.As(err, &unavailable):
		return "Fonte do índice indisponível. Tente novamente mais tarde."
	default:
		return "Verifique os dados. Formato correto: dd/mm/aaaa e valor em reais."
	}
}
