package main

import (
	"fmt"
	"os"

	"github.com/diillson/credit-review-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/credit-review-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/credit-review-dashboard-go/internal/adapter/driven/records"
	"github.com/diillson/credit-review-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/credit-review-dashboard-go/internal/application/usecase"
	"github.com/diillson/credit-review-dashboard-go/pkg/console"
	"github.com/diillson/credit-review-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	recordRepo := records.NewRecordRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reviewUseCase := usecase.NewReviewUseCase(
		recordRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetReviewUseCase(reviewUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
