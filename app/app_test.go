package app

import (
	"bytes"
	"cadcalc"
	"cadcalc/topology"
	"cadcalc/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCircuit(t *testing.T, config Config, input string) (*CircuitApp, string) {
	t.Helper()
	var out bytes.Buffer
	a := NewCircuitApp(strings.NewReader(input), &out, config)
	require.NoError(t, a.Run())
	return a, out.String()
}

func TestCircuitCreateSaveAnalyze(t *testing.T) {
	dir := t.TempDir()
	a, out := runCircuit(t, Config{Dir: dir}, "1 series 12 3 10 20 30 3 out.txt out.cir 4 series 5")

	assert.Contains(t, out, "Circuit created successfully.")
	assert.Contains(t, out, "Voltage Source: 1 -> 5, Type: DC, Voltage: 12.00 Volts")
	assert.Contains(t, out, "Resistor R3: 3 -> 4, Resistance: 30.00 Ohms")
	assert.Contains(t, out, "must have a '.cir' extension")
	assert.Contains(t, out, "Circuit saved to out.cir successfully.")
	assert.Contains(t, out, "   0.20000    0.20000    0.20000    0.20000")
	assert.Contains(t, out, "Exiting program. Goodbye!")

	c, err := cadcalc.Load(filepath.Join(dir, "out.cir"))
	require.NoError(t, err)
	assert.Equal(t, a.Session().Circuit, c)
	_, err = os.Stat(filepath.Join(dir, "out.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCircuitLoadRetries(t *testing.T) {
	dir := t.TempDir()
	c, err := topology.Build(types.Parallel, 5, []float64{10, 10, 10})
	require.NoError(t, err)
	require.NoError(t, cadcalc.Save(filepath.Join(dir, "p.cir"), c))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.cir"), []byte("PARALLEL\nnope\n"), 0o644))

	a, out := runCircuit(t, Config{Dir: dir}, "2 missing.cir bad.cir p.cir 4 PARALLEL 5")
	assert.Contains(t, out, "  - bad.cir")
	assert.Contains(t, out, "  - p.cir")
	assert.Contains(t, out, "Error: File 'missing.cir' not found.")
	assert.Contains(t, out, "Error reading circuit from file")
	assert.Contains(t, out, "Loaded Circuit Details:")
	assert.Contains(t, out, "   0.50000    0.50000    0.50000    1.50000")
	assert.Equal(t, c, a.Session().Circuit)
}

func TestCircuitMenuValidation(t *testing.T) {
	_, out := runCircuit(t, DefaultConfig(), "2.5 9 abc 3 4 5")
	assert.Contains(t, out, "without decimal places")
	assert.Contains(t, out, "between 1 and 5")
	assert.Contains(t, out, "No circuit has been created yet")
	assert.Contains(t, out, "No circuit has been created or loaded")
}

func TestCircuitInvalidType(t *testing.T) {
	a, out := runCircuit(t, DefaultConfig(), "1 mesh 1 parallel 5 3 10 10 10 4 star 5")
	assert.Contains(t, out, "Invalid circuit type. Please enter either SERIES or PARALLEL.")
	assert.Contains(t, out, "Invalid circuit type.\n")
	assert.NotContains(t, out, "Analysis Report")
	require.NotNil(t, a.Session().Circuit)
	assert.Equal(t, types.Parallel, a.Session().Circuit.Type)
}

func TestCircuitCreateRetriesValues(t *testing.T) {
	a, out := runCircuit(t, DefaultConfig(), "1 series -3 x 12 2 6 3.5 4 0 10 20 30 40 5")
	assert.Contains(t, out, "Error: Please enter a valid positive number.")
	assert.Contains(t, out, "Number of resistors must be between 3 and 5")
	require.NotNil(t, a.Session().Circuit)
	assert.Equal(t, []float64{10, 20, 30, 40}, a.Session().Circuit.Values())
}

func TestCircuitReuseStoredType(t *testing.T) {
	_, out := runCircuit(t, Config{ReuseStoredType: true}, "1 parallel 5 3 10 10 10 4 5")
	assert.NotContains(t, out, "Enter the circuit type (SERIES or PARALLEL)")
	assert.Contains(t, out, "   0.50000    0.50000    0.50000    1.50000")
}

func TestCircuitDeclaredTypeMismatch(t *testing.T) {
	a, out := runCircuit(t, DefaultConfig(), "1 series 5 3 10 10 10 4 parallel 5")
	assert.Equal(t, types.Series, a.Session().Circuit.Type)
	assert.Contains(t, out, "   0.50000    0.50000    0.50000    1.50000")
}

func TestCircuitExport(t *testing.T) {
	dir := t.TempDir()
	config := Config{
		Dir:        dir,
		ChartPath:  filepath.Join(dir, "chart.html"),
		RecordPath: filepath.Join(dir, "record.json"),
	}
	runCircuit(t, config, "1 series 12 4 1 2 3 4 4 series 5")

	chart, err := os.ReadFile(config.ChartPath)
	require.NoError(t, err)
	assert.Contains(t, string(chart), "echarts")

	record, err := os.ReadFile(config.RecordPath)
	require.NoError(t, err)
	assert.Contains(t, string(record), `"CircuitType":"SERIES"`)
}

func TestCircuitStopsAtEOF(t *testing.T) {
	a, _ := runCircuit(t, DefaultConfig(), "1 series 12")
	assert.Nil(t, a.Session().Circuit)
}

func TestCircuitOversizedInput(t *testing.T) {
	long := strings.Repeat("x", 3*MaxWord+7)
	a, out := runCircuit(t, DefaultConfig(), long+" 1 series "+long+" 12 3 10 20 30 5")
	assert.Contains(t, out, "between 1 and 5")
	assert.Contains(t, out, "Error: Please enter a valid positive number.")
	require.NotNil(t, a.Session().Circuit)
	assert.Equal(t, 12.0, a.Session().Circuit.Source.Value)
}
