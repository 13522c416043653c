package cadcalc

import (
	"bytes"
	"cadcalc/topology"
	"cadcalc/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFormat(t *testing.T) {
	c, err := topology.Build(types.Series, 12, []float64{10, 20, 30})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c))
	want := "SERIES\n" +
		"Voltage Source: 1 -> 5, Type: DC, Voltage: 12.00\n" +
		"Resistor 1: 1 -> 2, Resistance: 10.00\n" +
		"Resistor 2: 2 -> 3, Resistance: 20.00\n" +
		"Resistor 3: 3 -> 4, Resistance: 30.00\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	circuits := []*types.Circuit{}
	for _, tc := range []struct {
		t      types.CircuitType
		values []float64
	}{
		{types.Series, []float64{10, 20, 30}},
		{types.Series, []float64{1.5, 2.25, 3, 4}},
		{types.Series, []float64{1, 2, 3, 4, 5}},
		{types.Parallel, []float64{10, 10, 10}},
		{types.Parallel, []float64{47, 100, 220, 330, 470}},
	} {
		c, err := topology.Build(tc.t, 9.5, tc.values)
		require.NoError(t, err)
		circuits = append(circuits, c)
	}
	for i, c := range circuits {
		name := filepath.Join(dir, "c"+string(rune('a'+i))+".cir")
		require.NoError(t, Save(name, c))
		got, err := Load(name)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	names, err := ListSaved(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca.cir", "cb.cir", "cc.cir", "cd.cir", "ce.cir"}, names)
}

func TestSaveRejectsExtension(t *testing.T) {
	c, err := topology.Build(types.Parallel, 5, []float64{10, 10, 10})
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "circuit.txt")
	assert.ErrorIs(t, Save(name, c), types.ErrInvalidFileExtension)
	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadAnyExtension(t *testing.T) {
	name := filepath.Join(t.TempDir(), "circuit.txt")
	data := "parallel\nVoltage Source: 1 -> 2, Type: DC, Voltage: 5.00\n" +
		"Resistor 1: 1 -> 2, Resistance: 10.00\n" +
		"Resistor 2: 1 -> 2, Resistance: 20.00\n" +
		"Resistor 3: 1 -> 2, Resistance: 30.00\n"
	require.NoError(t, os.WriteFile(name, []byte(data), 0o644))

	c, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, types.Parallel, c.Type)
	assert.Equal(t, []float64{10, 20, 30}, c.Values())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cir"))
	assert.ErrorIs(t, err, types.ErrFileNotFound)

	for _, data := range []string{
		"",
		"MESH\nVoltage Source: 1 -> 2, Type: DC, Voltage: 5.00\n",
		"SERIES\nVoltage: 5\n",
		"SERIES\nVoltage Source: 1 -> 5, Type: DC, Voltage: 5.00\nResistor 1: 1 -> 2, Resistance: 10.00\n",
	} {
		_, err := Decode(strings.NewReader(data))
		assert.ErrorIs(t, err, types.ErrMalformedFile, data)
	}
}

func TestDecodeStopsAtMaxResistors(t *testing.T) {
	var b strings.Builder
	b.WriteString("PARALLEL\nVoltage Source: 1 -> 2, Type: DC, Voltage: 5.00\n")
	for i := 1; i <= 7; i++ {
		b.WriteString("Resistor 1: 1 -> 2, Resistance: 10.00\n")
	}
	c, err := Decode(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Len(t, c.Resistors, types.MaxResistors)
}

func TestDecodeStopsAtFirstMismatch(t *testing.T) {
	data := "SERIES\nVoltage Source: 1 -> 5, Type: DC, Voltage: 12.00\n" +
		"Resistor 1: 1 -> 2, Resistance: 10.00\n" +
		"Resistor 2: 2 -> 3, Resistance: 20.00\n" +
		"Resistor 3: 3 -> 4, Resistance: 30.00\n" +
		"# trailing note\n" +
		"Resistor 4: 4 -> 5, Resistance: 40.00\n"
	c, err := Decode(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, c.Resistors, 3)
}

func TestSession(t *testing.T) {
	var s Session
	_, err := s.Current()
	assert.ErrorIs(t, err, types.ErrNoCircuit)

	c, err := topology.Build(types.Series, 12, []float64{1, 2, 3})
	require.NoError(t, err)
	s.Set(c)
	got, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, c, got)
}
