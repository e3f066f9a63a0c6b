package main

import (
	"fmt"
	"os"

	"github.com/ggrighi15/Atualizar-Selic/cmd/atualizar"
	"github.com/ggrighi15/Atualizar-Selic/cmd/exemplo"
	"github.com/ggrighi15/Atualizar-Selic/cmd/indices"
	"github.com/ggrighi15/Atualizar-Selic/cmd/lote"
	"github.com/ggrighi15/Atualizar-Selic/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(atualizar.Cmd)
	root.Cmd.AddCommand(lote.Cmd)
	root.Cmd.AddCommand(indices.Cmd)
	root.Cmd.AddCommand(exemplo.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
