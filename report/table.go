// Package report 输出电路分析结果: 文本表格、JSON 记录与 HTML 图表。
package report

import (
	"bufio"
	"cadcalc/analysis"
	"fmt"
	"io"
	"strconv"
)

// column 表格中的一组量
type column struct {
	prefix string
	values []float64
	total  float64
	format string
}

// WriteTable 按 R/I/V/P 分组输出,每组先表头 (R1..Rn RT) 再数值
func WriteTable(w io.Writer, res *analysis.Result) error {
	writer := bufio.NewWriter(w)
	for _, col := range []column{
		{"R", res.Resistances(), res.TotalResistance, "%10.2f"},
		{"I", res.Currents(), res.TotalCurrent, "%10.5f"},
		{"V", res.VoltageDrops(), res.TotalVoltage, "%10.5f"},
		{"P", res.Powers(), res.TotalPower, "%10.5f"},
	} {
		for i := range col.values {
			fmt.Fprintf(writer, "%10s", col.prefix+strconv.Itoa(i+1))
		}
		fmt.Fprintf(writer, "%10s\n", col.prefix+"T")
		for _, v := range col.values {
			fmt.Fprintf(writer, col.format+" ", v)
		}
		fmt.Fprintf(writer, col.format+"\n", col.total)
	}
	return writer.Flush()
}
