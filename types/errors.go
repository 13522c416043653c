package types

import "errors"

// 错误分类
var (
	ErrInvalidInput         = errors.New("无效输入")
	ErrInvalidCircuitType   = errors.New("无效电路类型, 仅支持 SERIES 或 PARALLEL")
	ErrInvalidFileExtension = errors.New("文件必须使用 .cir 扩展名")
	ErrFileNotFound         = errors.New("文件不存在")
	ErrMalformedFile        = errors.New("电路文件格式错误")
	ErrDivisionByZero       = errors.New("除数为零")
	ErrNotFound             = errors.New("未找到满足条件的结果")
	ErrNoCircuit            = errors.New("尚未创建或加载电路")
)
