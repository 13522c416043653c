package report

import (
	"cadcalc/analysis"
	"cadcalc/types"
	"encoding/json"
	"fmt"
	"io"
)

// Record 一次分析的快照
type Record struct {
	CircuitType  string     // 存储的电路类型
	AnalysisType string     // 分析所用类型
	Elements     []string   // 元件列表, V 为电压源
	Nodes        [][2]int   // 元件节点对, 与 Elements 对齐
	Resistance   []float64  // 阻值
	Current      []float64  // 电流
	Voltage      []float64  // 压降
	Power        []float64  // 功率
	Total        [4]float64 // RT IT VT PT
	Source       float64    // 电源电压
}

// NewRecord 记录电路与分析结果
func NewRecord(c *types.Circuit, res *analysis.Result) *Record {
	rec := &Record{
		CircuitType:  c.Type.String(),
		AnalysisType: res.Type.String(),
		Elements:     []string{"V"},
		Nodes:        [][2]int{{c.Source.PositiveNode, c.Source.NegativeNode}},
		Resistance:   res.Resistances(),
		Current:      res.Currents(),
		Voltage:      res.VoltageDrops(),
		Power:        res.Powers(),
		Total:        [4]float64{res.TotalResistance, res.TotalCurrent, res.TotalVoltage, res.TotalPower},
		Source:       c.Source.Value,
	}
	for i, r := range c.Resistors {
		rec.Elements = append(rec.Elements, fmt.Sprintf("R%d", i+1))
		rec.Nodes = append(rec.Nodes, [2]int{r.PositiveNode, r.NegativeNode})
	}
	return rec
}

// Render 格式和输出内容
func (rec *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(rec) }
