package types

// 电路规模常量定义
const (
	MinResistors = 3      // 最少电阻数量
	MaxResistors = 5      // 最多电阻数量
	FileExt      = ".cir" // 电路文件扩展名
	SourceKind   = "DC"   // 电压源类型
)

// 默认参数常量定义
var (
	Tolerance    = 0.01 // 复利频率搜索容差
	MinFrequency = 1    // 复利频率搜索下限
	MaxFrequency = 12   // 复利频率搜索上限
	MaxYears     = 1000 // 报表与账户对比的年数上限
)
