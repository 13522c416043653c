package savings

import (
	"cadcalc/types"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 图表尺寸
var (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// PlotReport 绘制余额随年份变化曲线,format 为 png/svg/pdf 等 gonum/plot 支持的格式
func PlotReport(w io.Writer, rows []Row, format string) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: 报表为空", types.ErrInvalidInput)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Balance, P=%.2f r=%.3f n=%d", rows[0].Principal, rows[0].Rate, rows[0].Frequency)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Balance"

	pts := make(plotter.XYs, len(rows))
	for i, row := range rows {
		pts[i].X = float64(row.Year)
		pts[i].Y = row.Balance
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), line, points)

	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
