package usecase

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/diillson/credit-review-dashboard-go/internal/domain/repository"
	"github.com/diillson/credit-review-dashboard-go/internal/shared/types"
	"github.com/diillson/credit-review-dashboard-go/pkg/format"
)

// ReviewUseCase handles the credit-utilization review dashboard.
type ReviewUseCase struct {
	recordRepo repository.RecordRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewReviewUseCase creates a new review use case.
func NewReviewUseCase(
	recordRepo repository.RecordRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReviewUseCase {
	return &ReviewUseCase{
		recordRepo: recordRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunReview executa a funcionalidade principal do dashboard de revisão.
func (uc *ReviewUseCase) RunReview(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se especificado
	if args.ConfigFile != "" {
		if err := uc.applyConfigFile(args); err != nil {
			return err
		}
	}

	if args.InputFile == "" {
		return types.ErrNoInputFile
	}

	filter, err := ParseFilterMode(args.Filter)
	if err != nil {
		return err
	}
	sortMode, err := ParseSortMode(args.Sort)
	if err != nil {
		return err
	}

	// Carrega os registros de utilização
	status := uc.console.Status(fmt.Sprintf("Loading utilization records from %s...", args.InputFile))
	records, err := uc.recordRepo.LoadRecords(ctx, args.InputFile)
	status.Stop()
	if err != nil {
		return err
	}

	uc.warnDuplicateRowKeys(records)

	// A seleção começa vazia e é o único estado mutável da revisão
	selection := NewSelection()
	if args.SelectAll {
		selection.SelectAllVisible(visibleKeys(DeriveView(records, filter, sortMode)))
	}

	view := DeriveViewModel(records, filter, sortMode, selection)
	uc.renderReview(view)

	if args.Interactive {
		view, err = uc.runInteractive(records, filter, sortMode, selection, args)
		if err != nil {
			return err
		}
	}

	// Exporta os relatórios da visão atual
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(view, args)
	}

	return nil
}

// applyConfigFile carrega o arquivo de configuração e preenche os argumentos
// não informados na linha de comando.
func (uc *ReviewUseCase) applyConfigFile(args *types.CLIArgs) error {
	config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.InputFile == "" {
		args.InputFile = config.InputFile
	}
	if args.Filter == "" {
		args.Filter = config.Filter
	}
	if args.Sort == "" {
		args.Sort = config.Sort
	}
	if !args.Interactive {
		args.Interactive = config.Interactive
	}
	if args.ReportName == "" {
		args.ReportName = config.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" {
		args.Dir = config.Dir
	}

	return nil
}

// warnDuplicateRowKeys loga pares conta/autorização duplicados. A unicidade
// é um contrato do fornecedor dos dados; duplicatas tornam a seleção e os
// totais ambíguos, mas não são rejeitadas.
func (uc *ReviewUseCase) warnDuplicateRowKeys(records []entity.UtilizationRecord) {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		key := record.RowKey()
		if _, dup := seen[key]; dup {
			uc.console.LogWarning("Duplicate account/authorization pair %s/%s; selection totals may be ambiguous",
				record.AccountNumber, record.AuthorizationNumber)
			continue
		}
		seen[key] = struct{}{}
	}
}

// visibleKeys extrai as identidades das linhas visíveis.
func visibleKeys(visible []entity.UtilizationRecord) []string {
	keys := make([]string, 0, len(visible))
	for _, record := range visible {
		keys = append(keys, record.RowKey())
	}
	return keys
}

// Ações do modo interativo
const (
	actionChangeFilter = "Change filter"
	actionChangeSort   = "Change sort"
	actionToggleRows   = "Toggle row selection"
	actionSelectAll    = "Select all visible"
	actionClear        = "Clear selection"
	actionExport       = "Export reports"
	actionQuit         = "Quit"
)

// runInteractive executa o loop interativo: cada ação é uma transição de
// estado síncrona seguida da recomputação completa do view model.
func (uc *ReviewUseCase) runInteractive(
	records []entity.UtilizationRecord,
	filter FilterMode,
	sortMode SortMode,
	selection *Selection,
	args *types.CLIArgs,
) (entity.ReviewViewModel, error) {
	view := DeriveViewModel(records, filter, sortMode, selection)

	actions := []string{
		actionChangeFilter, actionChangeSort, actionToggleRows,
		actionSelectAll, actionClear, actionExport, actionQuit,
	}

	for {
		action, err := uc.console.SelectOption("What would you like to do?", actions)
		if err != nil {
			return view, err
		}

		switch action {
		case actionChangeFilter:
			choice, err := uc.console.SelectOption("Filter mode", []string{"all", "overused"})
			if err != nil {
				return view, err
			}
			filter, _ = ParseFilterMode(choice)

		case actionChangeSort:
			choice, err := uc.console.SelectOption("Sort mode", []string{"input", "authorized", "overage"})
			if err != nil {
				return view, err
			}
			sortMode, _ = ParseSortMode(choice)

		case actionToggleRows:
			if err := uc.toggleRows(records, filter, sortMode, selection); err != nil {
				return view, err
			}

		case actionSelectAll:
			selection.SelectAllVisible(visibleKeys(DeriveView(records, filter, sortMode)))

		case actionClear:
			selection.Clear()

		case actionExport:
			uc.exportReports(view, args)

		case actionQuit:
			return view, nil
		}

		// Recomputa e reexibe após cada mutação
		view = DeriveViewModel(records, filter, sortMode, selection)
		uc.renderReview(view)
	}
}

// toggleRows apresenta as linhas visíveis como um multiselect pré-marcado
// com a seleção atual. Linhas invisíveis não são tocadas, preservando a
// seleção através de mudanças de filtro.
func (uc *ReviewUseCase) toggleRows(
	records []entity.UtilizationRecord,
	filter FilterMode,
	sortMode SortMode,
	selection *Selection,
) error {
	visible := DeriveView(records, filter, sortMode)
	if len(visible) == 0 {
		uc.console.LogWarning("No visible rows to toggle under the current filter")
		return nil
	}

	labels := make([]string, 0, len(visible))
	keyByLabel := make(map[string]string, len(visible))
	preselected := []string{}

	for _, record := range visible {
		label := fmt.Sprintf("%s / %s", record.AccountNumber, record.AuthorizationNumber)
		labels = append(labels, label)
		key := record.RowKey()
		keyByLabel[label] = key
		if selection.Has(key) {
			preselected = append(preselected, label)
		}
	}

	chosen, err := uc.console.MultiselectOptions("Select rows", labels, preselected)
	if err != nil {
		return err
	}

	chosenSet := make(map[string]struct{}, len(chosen))
	for _, label := range chosen {
		chosenSet[label] = struct{}{}
	}

	for _, label := range labels {
		_, included := chosenSet[label]
		selection.Toggle(keyByLabel[label], included)
	}

	return nil
}

// exportReports exporta a visão atual para os formatos solicitados.
func (uc *ReviewUseCase) exportReports(view entity.ReviewViewModel, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		uc.console.LogWarning("Provide --report-name and --report-type to export reports")
		return
	}

	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
		progress.Increment()
	}
	progress.Stop()
}

// renderReview exibe a tabela de revisão, o resumo agregado e as barras de
// utilização para o view model atual.
func (uc *ReviewUseCase) renderReview(view entity.ReviewViewModel) {
	if view.Empty {
		uc.console.LogWarning("No utilization records to review")
		return
	}

	table := uc.createReviewTable(view)
	for _, row := range view.Rows {
		uc.addRowToTable(table, row, view.CurrencyCode)
	}
	uc.console.Print(table.Render())

	uc.renderSummary(view)
	uc.renderBars(view)
}

// createReviewTable cria a tabela de exibição com o checkbox de cabeçalho
// refletindo se todas as linhas visíveis estão selecionadas.
func (uc *ReviewUseCase) createReviewTable(view entity.ReviewViewModel) types.TableInterface {
	table := uc.console.CreateTable()

	table.AddColumn(fmt.Sprintf("%s Sel", checkbox(view.AllVisibleSelected)))
	table.AddColumn("Account")
	table.AddColumn("Authorization")
	table.AddColumn("Product")
	table.AddColumn(fmt.Sprintf("Authorized (%s)", view.CurrencyCode))
	table.AddColumn(fmt.Sprintf("Used (%s)", view.CurrencyCode))
	table.AddColumn(fmt.Sprintf("Overage (%s)", view.CurrencyCode))
	table.AddColumn("Utilization")
	table.AddColumn("Overage %")
	table.AddColumn("Severity")

	return table
}

// addRowToTable adiciona uma linha de revisão à tabela de exibição.
func (uc *ReviewUseCase) addRowToTable(table types.TableInterface, row entity.ReviewRow, currency string) {
	record := row.Record

	product := record.ProductName
	if product != "" && record.ProductFamily != "" {
		product = fmt.Sprintf("%s\n(%s)", record.ProductName, record.ProductFamily)
	}

	overageText := format.Amount(record.OverageAmount, currency)
	if record.Overused() {
		overageText = severityStyle(row.Severity).Sprint(overageText)
	}

	table.AddRow(
		checkbox(row.Selected),
		pterm.FgMagenta.Sprint(record.AccountNumber),
		record.AuthorizationNumber,
		product,
		format.Amount(record.AuthorizedAmount, currency),
		format.Amount(record.UsedAmount, currency),
		overageText,
		fmt.Sprintf("%.2f%%", row.UtilizationRatePercent),
		fmt.Sprintf("%.2f%%", row.OveragePercent),
		severityStyle(row.Severity).Sprint(row.SeverityName),
	)
}

// renderSummary exibe as estatísticas agregadas da carteira e os totais da
// seleção corrente.
func (uc *ReviewUseCase) renderSummary(view entity.ReviewViewModel) {
	aggregate := view.Aggregate
	uc.console.Printf("\n%s\n",
		pterm.FgCyan.Sprintf("Portfolio: %d lines | authorized %s | used %s | utilization %.2f%% | %d overused",
			aggregate.TotalAccounts,
			format.Amount(aggregate.TotalAuthorized, view.CurrencyCode),
			format.Amount(aggregate.TotalUsed, view.CurrencyCode),
			aggregate.UtilizationRatePercent,
			aggregate.OverusedCount))

	totals := view.Selection
	if totals.Count == 0 {
		uc.console.Printf("%s\n", pterm.FgGray.Sprint("Selection: none"))
		return
	}
	uc.console.Printf("%s\n",
		pterm.FgYellow.Sprintf("Selection: %d visible rows | authorized %s | used %s | overage %s",
			totals.Count,
			format.Amount(totals.TotalAuthorized, view.CurrencyCode),
			format.Amount(totals.TotalUsed, view.CurrencyCode),
			format.Amount(totals.TotalOverage, view.CurrencyCode)))
}

// renderBars exibe o gráfico de barras de utilização das linhas visíveis.
func (uc *ReviewUseCase) renderBars(view entity.ReviewViewModel) {
	if len(view.Rows) == 0 {
		return
	}

	bars := make([]types.UtilizationBar, 0, len(view.Rows))
	for _, row := range view.Rows {
		bars = append(bars, types.UtilizationBar{
			Label:              fmt.Sprintf("%s/%s", row.Record.AccountNumber, row.Record.AuthorizationNumber),
			UtilizationPercent: row.UtilizationRatePercent,
			Severity:           row.SeverityName,
		})
	}

	uc.console.DisplayUtilizationBars(bars)
}

// checkbox renders selection state for a row or the table header.
func checkbox(selected bool) string {
	if selected {
		return pterm.FgGreen.Sprint("[x]")
	}
	return "[ ]"
}

// severityStyle mapeia um nível de severidade ao seu estilo de exibição.
// A apresentação deriva sempre do SeverityLevel, nunca dos percentuais.
func severityStyle(severity entity.SeverityLevel) *pterm.Style {
	switch severity {
	case entity.SeverityMinorOverage:
		return pterm.NewStyle(pterm.FgYellow)
	case entity.SeverityModerateOverage:
		return pterm.NewStyle(pterm.FgLightRed)
	case entity.SeverityCriticalOverage:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGreen)
	}
}
