package savings

import (
	"cadcalc/types"
	"fmt"
	"io"
)

// Row 报表行
type Row struct {
	Year      int
	Principal float64
	Rate      float64
	Frequency int
	Balance   float64
}

// Report 生成 [t1, t2] 每个整数年的余额,区间最多 MaxYears 年
func Report(p, r float64, n, t1, t2 int) ([]Row, error) {
	if t2 < t1 {
		return nil, fmt.Errorf("%w: 结束年份 %d 小于开始年份 %d", types.ErrInvalidInput, t2, t1)
	}
	span := t2 - t1
	if span < 0 || span >= types.MaxYears {
		return nil, fmt.Errorf("%w: 年份区间 %d~%d 超过 %d 年", types.ErrInvalidInput, t1, t2, types.MaxYears)
	}
	rows := make([]Row, 0, span+1)
	for i := 0; i <= span; i++ {
		t := t1 + i
		rows = append(rows, Row{
			Year:      t,
			Principal: p,
			Rate:      r,
			Frequency: n,
			Balance:   Balance(p, r, n, float64(t)),
		})
	}
	return rows, nil
}

// WriteReport 输出报表
func WriteReport(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintf(w, "%-6s %-15s %-15s %-20s %-12s\n", "Year", "Principal", "Interest rate", "Compound ratio", "Balance"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-6d %-15.2f %-15.3f %-20d %-12.2f\n", row.Year, row.Principal, row.Rate, row.Frequency, row.Balance); err != nil {
			return err
		}
	}
	return nil
}
