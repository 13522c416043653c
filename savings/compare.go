package savings

import (
	"cadcalc/types"
	"fmt"
	"math"
)

// Comparison 两账户对比结果
type Comparison struct {
	Balance1 float64 // 第一个账户 t1 年后的余额
	Years    int     // 第二个账户最接近 Balance1 的年数
	Months   int     // 以及剩余月数
	Balance2 float64 // 第二个账户在该时刻的余额
}

// Compare 逐月扫描第二个账户,找到余额与第一个账户最接近的时刻。
// ratePercent 为百分数形式,一旦第二个账户余额不小于第一个账户,
// 或余额不再增长(利率过小被浮点舍入)即停止,返回已找到的最接近时刻。
func Compare(p, ratePercent float64, t1, n1, n2 int) (Comparison, error) {
	if p <= 0 || ratePercent <= 0 || t1 <= 0 || n1 <= 0 || n2 <= 0 {
		return Comparison{}, fmt.Errorf("%w: 本金、利率、年数与复利次数必须为正数", types.ErrInvalidInput)
	}
	if t1 > types.MaxYears {
		return Comparison{}, fmt.Errorf("%w: 年数 %d 超过 %d", types.ErrInvalidInput, t1, types.MaxYears)
	}
	r := ratePercent / 100
	cmp := Comparison{Balance1: Balance(p, r, n1, float64(t1))}
	smallest, prev := math.Inf(1), math.Inf(-1)
	for month := 0; ; month++ {
		balance2 := Balance(p, r, n2, float64(month)/12)
		if balance2 <= prev {
			return cmp, nil
		}
		prev = balance2
		if diff := math.Abs(cmp.Balance1 - balance2); diff < smallest {
			smallest = diff
			cmp.Years, cmp.Months = month/12, month%12
			cmp.Balance2 = balance2
		}
		if balance2 >= cmp.Balance1 {
			return cmp, nil
		}
	}
}
