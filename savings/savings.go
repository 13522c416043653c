// Package savings 复利公式 B = P·(1+r/n)^(n·t) 的各项求解。
//
// r 为小数形式的年利率,n 为每年复利次数,t 为年数。
// 只有 Compare 接收百分数形式的利率。
package savings

import (
	"cadcalc/types"
	"fmt"
	"math"
)

// Balance 求终值 B
func Balance(p, r float64, n int, t float64) float64 {
	return p * growth(r, n, t)
}

// Principal 求本金 P
func Principal(r float64, n int, t, b float64) float64 {
	return b / growth(r, n, t)
}

// Rate 求年利率 r
func Rate(n int, t, p, b float64) float64 {
	nf := float64(n)
	return nf * (math.Exp(math.Log(b/p)/(nf*t)) - 1)
}

// Time 求年数 t
func Time(n int, r, p, b float64) float64 {
	nf := float64(n)
	return math.Log(b/p) / (nf * math.Log(1+r/nf))
}

// Frequency 在 [MinFrequency, MaxFrequency] 内搜索第一个满足 |B(n)-b| < Tolerance 的 n。
// 超出范围不再继续搜索。
func Frequency(t, r, p, b float64) (int, error) {
	for n := types.MinFrequency; n <= types.MaxFrequency; n++ {
		if math.Abs(Balance(p, r, n, t)-b) < types.Tolerance {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: 复利频率 %d~%d 内无解", types.ErrNotFound, types.MinFrequency, types.MaxFrequency)
}

func growth(r float64, n int, t float64) float64 {
	nf := float64(n)
	return math.Pow(1+r/nf, nf*t)
}
