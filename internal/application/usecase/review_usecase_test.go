package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/diillson/credit-review-dashboard-go/internal/domain/entity"
	"github.com/diillson/credit-review-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records []entity.UtilizationRecord
	err     error
	path    string
}

func (f *fakeRecordRepo) LoadRecords(ctx context.Context, path string) ([]entity.UtilizationRecord, error) {
	f.path = path
	return f.records, f.err
}

type fakeExportRepo struct {
	exported map[string]entity.ReviewViewModel
}

func newFakeExportRepo() *fakeExportRepo {
	return &fakeExportRepo{exported: map[string]entity.ReviewViewModel{}}
}

func (f *fakeExportRepo) ExportToCSV(view entity.ReviewViewModel, filename, outputDir string) (string, error) {
	f.exported["csv"] = view
	return filename + ".csv", nil
}

func (f *fakeExportRepo) ExportToJSON(view entity.ReviewViewModel, filename, outputDir string) (string, error) {
	f.exported["json"] = view
	return filename + ".json", nil
}

func (f *fakeExportRepo) ExportToPDF(view entity.ReviewViewModel, filename, outputDir string) (string, error) {
	f.exported["pdf"] = view
	return filename + ".pdf", nil
}

type fakeConfigRepo struct {
	config *types.Config
	err    error
}

func (f *fakeConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	return f.config, f.err
}

type fakeConsole struct {
	warnings []string
}

func (f *fakeConsole) Print(a ...interface{})                  {}
func (f *fakeConsole) Printf(format string, a ...interface{})  {}
func (f *fakeConsole) Println(a ...interface{})                {}
func (f *fakeConsole) LogInfo(format string, a ...interface{}) {}
func (f *fakeConsole) LogWarning(format string, a ...interface{}) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, a...))
}
func (f *fakeConsole) LogError(format string, a ...interface{})   {}
func (f *fakeConsole) LogSuccess(format string, a ...interface{}) {}

func (f *fakeConsole) Status(message string) types.StatusHandle         { return noopHandle{} }
func (f *fakeConsole) ProgressWithTotal(total int) types.ProgressHandle { return noopHandle{} }

func (f *fakeConsole) CreateTable() types.TableInterface                  { return &fakeTable{} }
func (f *fakeConsole) DisplayUtilizationBars(bars []types.UtilizationBar) {}

func (f *fakeConsole) SelectOption(label string, options []string) (string, error) {
	return options[0], nil
}

func (f *fakeConsole) MultiselectOptions(label string, options []string, preselected []string) ([]string, error) {
	return preselected, nil
}

type noopHandle struct{}

func (noopHandle) Update(message string) {}
func (noopHandle) Increment()            {}
func (noopHandle) Stop()                 {}

type fakeTable struct{}

func (*fakeTable) AddColumn(name string, options ...interface{}) {}
func (*fakeTable) AddRow(cells ...interface{})                   {}
func (*fakeTable) Render() string                                { return "" }

func newTestUseCase(records []entity.UtilizationRecord) (*ReviewUseCase, *fakeExportRepo, *fakeConsole) {
	exportRepo := newFakeExportRepo()
	console := &fakeConsole{}
	uc := NewReviewUseCase(
		&fakeRecordRepo{records: records},
		exportRepo,
		&fakeConfigRepo{},
		console,
	)
	return uc, exportRepo, console
}

func TestRunReviewExportsRequestedReports(t *testing.T) {
	uc, exportRepo, _ := newTestUseCase(scenarioRecords())

	args := &types.CLIArgs{
		InputFile:  "records.csv",
		Filter:     "overused",
		Sort:       "overage",
		ReportName: "review",
		ReportType: []string{"csv", "json"},
	}

	require.NoError(t, uc.RunReview(context.Background(), args))

	require.Contains(t, exportRepo.exported, "csv")
	require.Contains(t, exportRepo.exported, "json")
	assert.NotContains(t, exportRepo.exported, "pdf")

	view := exportRepo.exported["csv"]
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "A1", view.Rows[0].Record.AccountNumber)
	assert.Equal(t, 2, view.Aggregate.TotalAccounts)
}

func TestRunReviewSelectAllFlag(t *testing.T) {
	uc, exportRepo, _ := newTestUseCase(scenarioRecords())

	args := &types.CLIArgs{
		InputFile:  "records.csv",
		SelectAll:  true,
		ReportName: "review",
		ReportType: []string{"json"},
	}

	require.NoError(t, uc.RunReview(context.Background(), args))

	view := exportRepo.exported["json"]
	assert.True(t, view.AllVisibleSelected)
	assert.Equal(t, 2, view.Selection.Count)
}

func TestRunReviewRequiresInputFile(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	err := uc.RunReview(context.Background(), &types.CLIArgs{})
	assert.ErrorIs(t, err, types.ErrNoInputFile)
}

func TestRunReviewRejectsUnknownModes(t *testing.T) {
	uc, _, _ := newTestUseCase(scenarioRecords())

	err := uc.RunReview(context.Background(), &types.CLIArgs{InputFile: "records.csv", Filter: "bogus"})
	assert.ErrorContains(t, err, "unknown filter mode")

	err = uc.RunReview(context.Background(), &types.CLIArgs{InputFile: "records.csv", Sort: "bogus"})
	assert.ErrorContains(t, err, "unknown sort mode")
}

func TestRunReviewWarnsOnDuplicateRowKeys(t *testing.T) {
	records := scenarioRecords()
	records = append(records, records[0])
	uc, _, console := newTestUseCase(records)

	require.NoError(t, uc.RunReview(context.Background(), &types.CLIArgs{InputFile: "records.csv"}))

	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "Duplicate account/authorization pair A1/1")
}

func TestRunReviewMergesConfigFile(t *testing.T) {
	exportRepo := newFakeExportRepo()
	uc := NewReviewUseCase(
		&fakeRecordRepo{records: scenarioRecords()},
		exportRepo,
		&fakeConfigRepo{config: &types.Config{
			InputFile:  "records.csv",
			Filter:     "overused",
			ReportName: "review",
			ReportType: []string{"csv"},
		}},
		&fakeConsole{},
	)

	args := &types.CLIArgs{ConfigFile: "config.toml"}
	require.NoError(t, uc.RunReview(context.Background(), args))

	// Flags were empty, so the config file filled them.
	assert.Equal(t, "records.csv", args.InputFile)
	assert.Equal(t, "overused", args.Filter)

	view := exportRepo.exported["csv"]
	require.Len(t, view.Rows, 1)
}

func TestRunReviewFlagsWinOverConfigFile(t *testing.T) {
	exportRepo := newFakeExportRepo()
	uc := NewReviewUseCase(
		&fakeRecordRepo{records: scenarioRecords()},
		exportRepo,
		&fakeConfigRepo{config: &types.Config{Filter: "overused"}},
		&fakeConsole{},
	)

	args := &types.CLIArgs{ConfigFile: "config.toml", InputFile: "records.csv", Filter: "all", ReportName: "review", ReportType: []string{"csv"}}
	require.NoError(t, uc.RunReview(context.Background(), args))

	view := exportRepo.exported["csv"]
	assert.Len(t, view.Rows, 2)
}
