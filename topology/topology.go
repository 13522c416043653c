// Package topology 按固定目录为电阻和电压源分配节点。
//
// 节点表不是由通用串并联综合算法推导的,4 和 5 个电阻的串联表
// 中 R1/R2 共享同一节点对,但分析时仍按纯串联公式计算。
package topology

import (
	"cadcalc/types"
	"fmt"
)

// Pair 正负极节点对
type Pair [2]int

// seriesTable 串联节点目录,按电阻数量索引
var seriesTable = map[int][]Pair{
	3: {{1, 2}, {2, 3}, {3, 4}},
	4: {{1, 2}, {1, 2}, {2, 3}, {3, 4}},
	5: {{1, 2}, {1, 2}, {2, 3}, {2, 3}, {3, 4}},
}

// Nodes 返回电阻节点对和电压源节点对
func Nodes(t types.CircuitType, count int) (resistors []Pair, source Pair, err error) {
	if count < types.MinResistors || count > types.MaxResistors {
		return nil, Pair{}, fmt.Errorf("%w: 电阻数量必须在 %d~%d 之间, 得到 %d", types.ErrInvalidInput, types.MinResistors, types.MaxResistors, count)
	}
	switch t {
	case types.Series:
		return append([]Pair(nil), seriesTable[count]...), Pair{1, count + 2}, nil
	case types.Parallel:
		resistors = make([]Pair, count)
		for i := range resistors {
			resistors[i] = Pair{1, 2}
		}
		return resistors, Pair{1, 2}, nil
	}
	return nil, Pair{}, fmt.Errorf("%w: %d", types.ErrInvalidCircuitType, t)
}

// Build 创建电路
func Build(t types.CircuitType, voltage float64, values []float64) (*types.Circuit, error) {
	pairs, source, err := Nodes(t, len(values))
	if err != nil {
		return nil, err
	}
	c := &types.Circuit{
		Type: t,
		Source: types.VoltageSource{
			PositiveNode: source[0],
			NegativeNode: source[1],
			Value:        voltage,
			Kind:         types.SourceKind,
		},
		Resistors: make([]types.Resistor, len(values)),
	}
	for i, v := range values {
		c.Resistors[i] = types.Resistor{
			PositiveNode: pairs[i][0],
			NegativeNode: pairs[i][1],
			Value:        v,
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
