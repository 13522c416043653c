// Package app 电路分析与储蓄计算的交互式终端菜单。
package app

import (
	"cadcalc"
	"cadcalc/analysis"
	"cadcalc/report"
	"cadcalc/topology"
	"cadcalc/types"
	"cadcalc/utils"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
)

// CircuitApp 电路分析应用程序
type CircuitApp struct {
	*Prompter
	config  Config
	session cadcalc.Session
}

// NewCircuitApp 创建新的电路分析应用程序
func NewCircuitApp(r io.Reader, w io.Writer, config Config) *CircuitApp {
	if config.Dir == "" {
		config.Dir = "."
	}
	return &CircuitApp{Prompter: NewPrompter(r, w), config: config}
}

// Session 当前会话
func (a *CircuitApp) Session() *cadcalc.Session { return &a.session }

// Run 运行菜单循环,选择退出或输入结束时返回
func (a *CircuitApp) Run() error {
	for {
		a.displayMenu()
		s, err := a.Word("")
		if err != nil {
			return ignoreEOF(err)
		}
		if strings.Contains(s, ".") {
			a.Printf("\nInvalid input. Please enter a whole number without decimal places.\n")
			continue
		}
		choice, err := utils.ParseInRange(s, 1, 5)
		if err != nil {
			a.Printf("\nInvalid input. Please enter a whole number between 1 and 5.\n")
			continue
		}
		switch choice {
		case 1:
			err = a.Create()
		case 2:
			err = a.Load()
		case 3:
			err = a.Save()
		case 4:
			err = a.Analyze()
		case 5:
			a.Printf("\nExiting program. Goodbye!\n")
			return nil
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// Create 创建电路
func (a *CircuitApp) Create() error {
	s, err := a.Word("Enter the type of circuit (SERIES or PARALLEL): ")
	if err != nil {
		return err
	}
	t, err := types.ParseCircuitType(s)
	if err != nil {
		a.Printf("Invalid circuit type. Please enter either SERIES or PARALLEL.\n")
		return nil
	}
	voltage, err := Positive[float64](a.Prompter, "Enter voltage value (in volts): ", "Error: Please enter a valid positive number.")
	if err != nil {
		return err
	}
	count, err := InRange(a.Prompter, "Enter number of resistors (between 3 and 5): ",
		"Error: Number of resistors must be between 3 and 5 and a valid positive whole number.",
		types.MinResistors, types.MaxResistors)
	if err != nil {
		return err
	}
	values := make([]float64, count)
	for i := range values {
		a.Printf("\nEnter resistance value for resistor R%d (in ohms): ", i+1)
		if values[i], err = Positive[float64](a.Prompter, "Resistance value: ", "Error: Please enter a valid positive number."); err != nil {
			return err
		}
	}
	c, err := topology.Build(t, voltage, values)
	if err != nil {
		a.Printf("Error: %v\n", err)
		return nil
	}
	a.session.Set(c)
	a.Printf("\nCircuit created successfully.\n")
	a.printCircuit(c)
	return nil
}

// Load 加载电路,文件不存在或格式错误时重新列出文件并重试
func (a *CircuitApp) Load() error {
	for {
		a.listSaved()
		name, err := a.Word("\nEnter filename to load the circuit (e.g., circuit.cir): ")
		if err != nil {
			return err
		}
		c, err := cadcalc.Load(a.path(name))
		switch {
		case errors.Is(err, types.ErrFileNotFound):
			a.Printf("Error: File '%s' not found. Please choose a file from the list.\n", name)
			continue
		case err != nil:
			a.Printf("Error reading circuit from file: %v. Please choose another file.\n", err)
			continue
		}
		a.session.Set(c)
		a.Printf("\nLoaded Circuit Details:\n")
		a.printCircuit(c)
		return nil
	}
}

// Save 保存电路,扩展名不是 .cir 时重新询问
func (a *CircuitApp) Save() error {
	c, err := a.session.Current()
	if err != nil {
		a.Printf("Error: No circuit has been created yet. Please create a circuit first (Option 1).\n")
		return nil
	}
	for {
		name, err := a.Word("Enter filename to save the circuit (e.g., circuit.cir): ")
		if err != nil {
			return err
		}
		err = cadcalc.Save(a.path(name), c)
		switch {
		case errors.Is(err, types.ErrInvalidFileExtension):
			a.Printf("Error: The file must have a '.cir' extension. Please try again.\n")
			continue
		case err != nil:
			log.Println(err)
			a.Printf("Error opening file for saving.\n")
			return nil
		}
		a.Printf("Circuit saved to %s successfully.\n", name)
		return nil
	}
}

// Analyze 分析电路并输出报告。
// 默认重新询问电路类型,与存储的类型无关。
func (a *CircuitApp) Analyze() error {
	c, err := a.session.Current()
	if err != nil {
		a.Printf("Error: No circuit has been created or loaded. Please use Option 1 (Create Circuit) or Option 2 (Load Circuit) first.\n")
		return nil
	}
	declared := c.Type
	if !a.config.ReuseStoredType {
		s, err := a.Word("\nEnter the circuit type (SERIES or PARALLEL): ")
		if err != nil {
			return err
		}
		if declared, err = types.ParseCircuitType(s); err != nil {
			a.Printf("Invalid circuit type.\n")
			return nil
		}
	}
	res, err := analysis.Analyze(c, declared)
	if err != nil {
		a.Printf("Error: %v\n", err)
		return nil
	}
	a.Printf("\nAnalysis Report:\n")
	if err := report.WriteTable(a.out, res); err != nil {
		return err
	}
	a.export(c, res)
	return nil
}

// export 按配置导出图表与记录
func (a *CircuitApp) export(c *types.Circuit, res *analysis.Result) {
	if a.config.ChartPath == "" && a.config.RecordPath == "" {
		return
	}
	rec := report.NewRecord(c, res)
	if a.config.ChartPath != "" {
		writeFile(a.config.ChartPath, (&report.Charts{Record: rec}).Render)
	}
	if a.config.RecordPath != "" {
		writeFile(a.config.RecordPath, rec.Render)
	}
}

func (a *CircuitApp) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.config.Dir, name)
}

func (a *CircuitApp) listSaved() {
	names, err := cadcalc.ListSaved(a.config.Dir)
	if err != nil {
		log.Println(err)
		a.Printf("Error: Unable to open the directory.\n")
		return
	}
	a.Printf("\nAvailable Saved Circuits:\n")
	for _, name := range names {
		a.Printf("  - %s\n", name)
	}
}

func (a *CircuitApp) printCircuit(c *types.Circuit) {
	a.Printf("Circuit Type: %s\n", c.Type)
	a.Printf("Voltage Source: %d -> %d, Type: %s, Voltage: %.2f Volts\n",
		c.Source.PositiveNode, c.Source.NegativeNode, c.Source.Kind, c.Source.Value)
	for i, r := range c.Resistors {
		a.Printf("Resistor R%d: %d -> %d, Resistance: %.2f Ohms\n", i+1, r.PositiveNode, r.NegativeNode, r.Value)
	}
}

func (a *CircuitApp) displayMenu() {
	a.Printf("\n--- Circuit Analysis & Design (CAD) Menu ---\n")
	a.Printf("1. Create circuit (series or parallel).\n")
	a.Printf("   - Define a new circuit by specifying voltage source and resistors.\n")
	a.Printf("2. Load circuit (series or parallel).\n")
	a.Printf("   - Load a saved circuit file (.cir format).\n")
	a.Printf("3. Save circuit (must create a circuit first).\n")
	a.Printf("   - Save the current circuit configuration to a file.\n")
	a.Printf("4. Analyze and print report for DC analysis.\n")
	a.Printf("   - Analyze circuit and display resistance, current, voltage, and power.\n")
	a.Printf("5. Exit program.\n")
	a.Printf("Please choose an option [1-5]: ")
}
