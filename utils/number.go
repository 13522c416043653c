package utils

import (
	"cadcalc/types"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number 可解析的数值类型
type Number interface {
	constraints.Integer | constraints.Float
}

// ParseNumber 解析数值,整数类型不接受小数
func ParseNumber[T Number](s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	switch any(zero).(type) {
	case float32, float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return zero, fmt.Errorf("%w: %q 不是有效数字", types.ErrInvalidInput, s)
		}
		return T(v), nil
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q 不是整数", types.ErrInvalidInput, s)
		}
		return T(v), nil
	}
}

// ParsePositive 解析正数
func ParsePositive[T Number](s string) (T, error) {
	v, err := ParseNumber[T](s)
	if err != nil {
		return v, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %q 不是正数", types.ErrInvalidInput, s)
	}
	return v, nil
}

// ParseInRange 解析 [lo, hi] 范围内的数值
func ParseInRange[T Number](s string, lo, hi T) (T, error) {
	v, err := ParseNumber[T](s)
	if err != nil {
		return v, err
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %v 超出范围 %v~%v", types.ErrInvalidInput, v, lo, hi)
	}
	return v, nil
}
