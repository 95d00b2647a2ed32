package cli

import (
	"context"
	"path/filepath"

	"github.com/diillson/credit-review-dashboard-go/pkg/version"

	"github.com/diillson/credit-review-dashboard-go/internal/application/usecase"
	"github.com/diillson/credit-review-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reviewUseCase *usecase.ReviewUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "credit-review",
		Short:   "Credit Utilization Review Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Credit Review Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Path to the utilization records file (CSV or JSON)")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Filter mode: all, overused (default: all)")
	rootCmd.PersistentFlags().StringP("sort", "s", "", "Sort mode: input, authorized, overage (default: input)")
	rootCmd.PersistentFlags().BoolP("interactive", "I", false, "Review the records interactively (filter, sort, select rows)")
	rootCmd.PersistentFlags().Bool("select-all", false, "Start with all visible rows selected")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	inputFile, _ := app.rootCmd.Flags().GetString("input")
	filter, _ := app.rootCmd.Flags().GetString("filter")
	sortMode, _ := app.rootCmd.Flags().GetString("sort")
	interactive, _ := app.rootCmd.Flags().GetBool("interactive")
	selectAll, _ := app.rootCmd.Flags().GetBool("select-all")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	// Converte o diretório de saída para caminho absoluto quando informado
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		InputFile:   inputFile,
		Filter:      filter,
		Sort:        sortMode,
		Interactive: interactive,
		SelectAll:   selectAll,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa a revisão
	ctx := context.Background()
	return app.reviewUseCase.RunReview(ctx, cliArgs)
}

// SetReviewUseCase sets the review use case for the CLI app.
func (app *CLIApp) SetReviewUseCase(useCase *usecase.ReviewUseCase) {
	app.reviewUseCase = useCase
}
