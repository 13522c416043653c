package types

import (
	"fmt"
	"strings"
)

// CircuitType 电路拓扑类型
type CircuitType int

// 电路类型常量定义
const (
	Series   CircuitType = iota // 串联
	Parallel                    // 并联
)

// circuitTypeString 类型映射
var circuitTypeString = map[CircuitType]string{
	Series:   "SERIES",
	Parallel: "PARALLEL",
}

var mapName = map[string]CircuitType{
	"SERIES":   Series,
	"PARALLEL": Parallel,
}

// String 返回电路类型的字符串表示
func (t CircuitType) String() string {
	if name, ok := circuitTypeString[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid 是否为已知类型
func (t CircuitType) Valid() bool {
	_, ok := circuitTypeString[t]
	return ok
}

// ParseCircuitType 通过名称获取类型,不区分大小写
func ParseCircuitType(name string) (CircuitType, error) {
	if t, ok := mapName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCircuitType, name)
}
