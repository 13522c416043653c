package types

import "fmt"

// VoltageSource 电压源
type VoltageSource struct {
	PositiveNode int     // 正极节点
	NegativeNode int     // 负极节点
	Value        float64 // 电压(V)
	Kind         string  // 电源类型
}

// Resistor 电阻
type Resistor struct {
	PositiveNode int     // 正极节点
	NegativeNode int     // 负极节点
	Value        float64 // 阻值(Ω)
}

// Circuit 电路,一个电压源加 3~5 个按声明顺序排列的电阻
type Circuit struct {
	Type      CircuitType
	Source    VoltageSource
	Resistors []Resistor
}

// Validate 检查电路约束
func (c *Circuit) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCircuitType, c.Type)
	}
	if c.Source.Value <= 0 {
		return fmt.Errorf("%w: 电压必须为正数 %v", ErrInvalidInput, c.Source.Value)
	}
	if n := len(c.Resistors); n < MinResistors || n > MaxResistors {
		return fmt.Errorf("%w: 电阻数量必须在 %d~%d 之间, 得到 %d", ErrInvalidInput, MinResistors, MaxResistors, n)
	}
	for i, r := range c.Resistors {
		if r.Value <= 0 {
			return fmt.Errorf("%w: 电阻 R%d 阻值必须为正数 %v", ErrInvalidInput, i+1, r.Value)
		}
	}
	return nil
}

// Values 阻值列表
func (c *Circuit) Values() []float64 {
	values := make([]float64, len(c.Resistors))
	for i, r := range c.Resistors {
		values[i] = r.Value
	}
	return values
}
