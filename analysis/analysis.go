// Package analysis 直流电阻电路的串并联分析。
package analysis

import (
	"cadcalc/types"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Component 单个电阻的分析结果
type Component struct {
	Resistance  float64 // 阻值
	Current     float64 // 电流
	VoltageDrop float64 // 压降
	Power       float64 // 功率
}

// Result 分析结果,每次分析重新计算
type Result struct {
	Type            types.CircuitType // 计算所用公式类型
	Resistors       []Component       // 按声明顺序
	TotalResistance float64
	TotalCurrent    float64
	TotalVoltage    float64
	TotalPower      float64
}

// Analyze 按 declared 选择公式分析电路。
// declared 与 c.Type 相互独立,不一致时按 declared 解释电路数据。
func Analyze(c *types.Circuit, declared types.CircuitType) (*Result, error) {
	if c == nil {
		return nil, types.ErrNoCircuit
	}
	values := c.Values()
	for i, v := range values {
		if v == 0 {
			return nil, fmt.Errorf("%w: 电阻 R%d 阻值为 0", types.ErrDivisionByZero, i+1)
		}
	}
	res := &Result{Type: declared, Resistors: make([]Component, len(values))}
	source := c.Source.Value
	switch declared {
	case types.Series:
		res.TotalResistance = floats.Sum(values)
		if res.TotalResistance == 0 {
			return nil, fmt.Errorf("%w: 总电阻为 0", types.ErrDivisionByZero)
		}
		res.TotalCurrent = source / res.TotalResistance
		drops := make([]float64, len(values))
		for i, v := range values {
			cur := res.TotalCurrent
			drops[i] = cur * v
			res.Resistors[i] = Component{Resistance: v, Current: cur, VoltageDrop: drops[i], Power: cur * drops[i]}
		}
		res.TotalVoltage = floats.Sum(drops)
	case types.Parallel:
		reciprocal := make([]float64, len(values))
		for i, v := range values {
			reciprocal[i] = 1 / v
		}
		sum := floats.Sum(reciprocal)
		if sum == 0 {
			return nil, fmt.Errorf("%w: 总电导为 0", types.ErrDivisionByZero)
		}
		res.TotalResistance = 1 / sum
		res.TotalCurrent = source / res.TotalResistance
		for i, v := range values {
			cur := source / v
			res.Resistors[i] = Component{Resistance: v, Current: cur, VoltageDrop: source, Power: cur * source}
		}
		res.TotalVoltage = source
	default:
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidCircuitType, declared)
	}
	res.TotalPower = res.TotalCurrent * source
	if math.IsInf(res.TotalCurrent, 0) || math.IsNaN(res.TotalCurrent) {
		return nil, fmt.Errorf("%w: 总电流溢出", types.ErrDivisionByZero)
	}
	return res, nil
}

// Currents 各电阻电流
func (res *Result) Currents() []float64 {
	return res.column(func(c Component) float64 { return c.Current })
}

// VoltageDrops 各电阻压降
func (res *Result) VoltageDrops() []float64 {
	return res.column(func(c Component) float64 { return c.VoltageDrop })
}

// Powers 各电阻功率
func (res *Result) Powers() []float64 {
	return res.column(func(c Component) float64 { return c.Power })
}

// Resistances 各电阻阻值
func (res *Result) Resistances() []float64 {
	return res.column(func(c Component) float64 { return c.Resistance })
}

func (res *Result) column(get func(Component) float64) []float64 {
	out := make([]float64, len(res.Resistors))
	for i, c := range res.Resistors {
		out[i] = get(c)
	}
	return out
}
