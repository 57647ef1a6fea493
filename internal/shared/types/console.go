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

	CreateTable() TableInterface
	DisplayUsageBars(bars []UsageBar)
	DisplayCostCurve(points []CostBar, balance float64, currency string)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// UsageBar representa um dia no gráfico de consumo, histórico ou previsto.
type UsageBar struct {
	Day      int
	KWh      float64
	Forecast bool
}

// CostBar representa um ponto da curva de custo acumulado para exibição.
type CostBar struct {
	Day  float64
	Cost float64
}
