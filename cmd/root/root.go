// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ggrighi15/Atualizar-Selic/internal/batch"
	"github.com/ggrighi15/Atualizar-Selic/internal/config"
	"github.com/ggrighi15/Atualizar-Selic/internal/engine"
	"github.com/ggrighi15/Atualizar-Selic/internal/indexes"
	"github.com/ggrighi15/Atualizar-Selic/internal/moneyutils"
)

// CommonFlags represents the flags that are shared by the correction commands
type CommonFlags struct {
	Indice string
	Diario bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "atualizar-selic",
		Short: "Atualização monetária de valores por índices econômicos.",
		Long: `atualizar-selic corrige valores monetários por um índice econômico
(Selic, IPCA, CDI ou IGPM), para uma entrada única ou para uma planilha
inteira (CSV ou XLSX). A correção usa uma taxa mensal aproximada ou, com
--diario, a série diária real obtida do SGS do Bacen.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Push the configured logger into every package.
			moneyutils.SetLogger(Log)
			indexes.SetLogger(Log)
			engine.SetLogger(Log)
			batch.SetLogger(Log)

			if delim := cfg.CSV.Delimiter; delim != "" {
				batch.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags are the correction flags common to atualizar and lote
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Indice, "indice", "x", "Selic", "Índice de correção (Selic, IPCA, CDI, IGPM)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Diario, "diario", "d", false, "Usar a série diária real do SGS em vez da taxa mensal aproximada")
}

// BuildProvider assembles the index provider selected by the shared flags:
// the fixed monthly-rate provider by default, or the SGS daily-series
// provider when --diario is set.
func BuildProvider() indexes.Provider {
	if SharedFlags.Diario {
		timeout := 30 * time.Second
		baseURL := ""
		if Cfg != nil {
			timeout = time.Duration(Cfg.SGS.TimeoutSeconds) * time.Second
			baseURL = Cfg.SGS.BaseURL
		}
		return indexes.NewDailyProvider(indexes.NewSGSClient(baseURL, timeout))
	}

	overrides := map[indexes.Name]float64{}
	if Cfg != nil {
		for name, rate := range Cfg.Rates {
			overrides[indexes.Lookup(name).Name] = rate
		}
	}
	return indexes.NewFixedProvider(overrides)
}
