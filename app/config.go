package app

// Config 应用配置
type Config struct {
	Dir             string // 电路文件目录
	ChartPath       string // 分析图表 HTML 输出路径, 为空不输出
	RecordPath      string // 分析记录 JSON 输出路径, 为空不输出
	PlotPath        string // 储蓄报表曲线输出路径, 为空不输出
	ReuseStoredType bool   // 分析时使用存储的电路类型, 不再询问
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{Dir: "."}
}
