package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayUtilizationBars(bars []UtilizationBar)

	SelectOption(label string, options []string) (string, error)
	MultiselectOptions(label string, options []string, preselected []string) ([]string, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// UtilizationBar representa a utilização de uma linha de crédito, usada para
// gráficos de barras.
type UtilizationBar struct {
	Label              string  `json:"label"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Severity           string  `json:"severity"`
}
