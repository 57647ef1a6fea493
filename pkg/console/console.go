package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/prepaid-meter-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayUsageBars exibe o consumo histórico e previsto como barras, dia a
// dia. Barras azuis são medições; barras vermelhas são extrapolação.
func (c *Console) DisplayUsageBars(bars []types.UsageBar) {
	maxKWh := 0.0
	for _, b := range bars {
		if b.KWh > maxKWh {
			maxKWh = b.KWh
		}
	}

	if maxKWh == 0 {
		pterm.Warning.Println("No usage to chart: all days are 0.00 kWh")
		return
	}

	tableData := pterm.TableData{
		{"Day", "kWh", "", "Source"},
	}

	for _, b := range bars {
		barLength := int((b.KWh / maxKWh) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		source := pterm.FgBlue.Sprint("metered")
		if b.Forecast {
			barColor = pterm.FgRed.Sprint(bar)
			source = pterm.FgRed.Sprint("forecast")
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", b.Day),
			fmt.Sprintf("%.2f", b.KWh),
			barColor,
			source,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Electricity Usage Forecast").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayCostCurve exibe a curva de custo acumulado com o saldo como linha de
// corte: barras verdes ainda cabem no saldo, vermelhas já o ultrapassam.
func (c *Console) DisplayCostCurve(points []types.CostBar, balance float64, currency string) {
	maxCost := balance
	for _, p := range points {
		if p.Cost > maxCost {
			maxCost = p.Cost
		}
	}

	if maxCost == 0 {
		pterm.Warning.Printfln("All cumulative costs are %s 0.00 for this horizon", currency)
		return
	}

	tableData := pterm.TableData{
		{"Day", "Cumulative Cost", ""},
	}

	for _, p := range points {
		barLength := int((p.Cost / maxCost) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgGreen.Sprint(bar)
		if p.Cost > balance {
			barColor = pterm.FgRed.Sprint(bar)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%.0f", p.Day),
			fmt.Sprintf("%s %.2f", currency, p.Cost),
			barColor,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	title := fmt.Sprintf("Cumulative Cost vs Balance (%s %.2f)", currency, balance)
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
