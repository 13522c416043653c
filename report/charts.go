package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 分析结果图表
type Charts struct {
	*Record
}

// barChart 单组量的柱状图
func (c *Charts) barChart(title, subtitle, name string, values []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	items := make([]opts.BarData, len(values))
	for i, v := range values {
		items[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(c.Elements[1:]).AddSeries(name, items)
	return bar
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 电路节点
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "电路节点信息",
			Subtitle: fmt.Sprintf("%s 电路, 按 %s 分析", c.CircuitType, c.AnalysisType),
		}),
	)
	graphNodes := make([]opts.GraphNode, 0, len(c.Elements))
	graphLink := make([]opts.GraphLink, 0, 2*len(c.Elements))
	seen := map[int]bool{}
	for i, name := range c.Elements {
		graphNodes = append(graphNodes, opts.GraphNode{
			Name:     name,
			Category: 0,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
		for _, n := range c.Nodes[i] {
			node := fmt.Sprintf("Node(%d)", n)
			if !seen[n] {
				seen[n] = true
				graphNodes = append(graphNodes, opts.GraphNode{
					Name:     node,
					Category: 1,
					Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
				})
			}
			graphLink = append(graphLink, opts.GraphLink{Source: name, Target: node})
		}
	}
	graph.AddSeries("电路列表", graphNodes, graphLink,
		charts.WithGraphChartOpts(opts.GraphChart{
			Categories: []*opts.GraphCategory{
				{Name: "元件", ItemStyle: &opts.ItemStyle{Color: "#c71979b7"}},
				{Name: "节点", ItemStyle: &opts.ItemStyle{Color: "#1987c7b7"}},
			},
			Roam:               opts.Bool(true),
			Force:              &opts.GraphForce{Repulsion: 80},
			FocusNodeAdjacency: opts.Bool(true),
		}))
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		graph,
		c.barChart("电流", fmt.Sprintf("IT = %.5f A", c.Total[1]), "I", c.Current),
		c.barChart("压降", fmt.Sprintf("VT = %.5f V", c.Total[2]), "V", c.Voltage),
		c.barChart("功率", fmt.Sprintf("PT = %.5f W", c.Total[3]), "P", c.Power),
	)
	return page.Render(w)
}
