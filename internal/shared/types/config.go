package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	InputFile   string   `json:"input_file" yaml:"input_file" toml:"input_file"`
	Filter      string   `json:"filter" yaml:"filter" toml:"filter"`
	Sort        string   `json:"sort" yaml:"sort" toml:"sort"`
	Interactive bool     `json:"interactive" yaml:"interactive" toml:"interactive"`
	ReportName  string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
}
