package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	InputFile   string
	Filter      string
	Sort        string
	Interactive bool
	SelectAll   bool
	ReportName  string
	ReportType  []string
	Dir         string
}
