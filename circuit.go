// Package cadcalc 直流电阻电路的会话状态与 .cir 文件读写。
package cadcalc

import (
	"bufio"
	"cadcalc/types"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sourceLine   = regexp.MustCompile(`^Voltage Source:\s*(-?\d+)\s*->\s*(-?\d+),\s*Type:\s*DC,\s*Voltage:\s*(\S+)$`)
	resistorLine = regexp.MustCompile(`^Resistor\s+\d+:\s*(-?\d+)\s*->\s*(-?\d+),\s*Resistance:\s*(\S+)$`)
)

// Session 当前会话,Circuit 为 nil 表示尚未创建或加载
type Session struct {
	Circuit *types.Circuit
}

// Set 整体替换当前电路
func (s *Session) Set(c *types.Circuit) { s.Circuit = c }

// Current 得到当前电路
func (s *Session) Current() (*types.Circuit, error) {
	if s.Circuit == nil {
		return nil, types.ErrNoCircuit
	}
	return s.Circuit, nil
}

// Save 保存电路到 .cir 文件
func Save(filename string, c *types.Circuit) error {
	if filepath.Ext(filename) != types.FileExt {
		return fmt.Errorf("%w: %s", types.ErrInvalidFileExtension, filename)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := Encode(file, c); err != nil {
		return err
	}
	return file.Close()
}

// Encode 导出电路文本
func Encode(w io.Writer, c *types.Circuit) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, "%s\n", c.Type)
	fmt.Fprintf(writer, "Voltage Source: %d -> %d, Type: %s, Voltage: %.2f\n",
		c.Source.PositiveNode, c.Source.NegativeNode, types.SourceKind, c.Source.Value)
	for i, r := range c.Resistors {
		fmt.Fprintf(writer, "Resistor %d: %d -> %d, Resistance: %.2f\n",
			i+1, r.PositiveNode, r.NegativeNode, r.Value)
	}
	return writer.Flush()
}

// Load 从文件加载电路,读取时不检查扩展名
func Load(filename string) (*types.Circuit, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrFileNotFound, filename)
		}
		return nil, err
	}
	defer file.Close()
	c, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Decode 解析电路文本
func Decode(r io.Reader) (*types.Circuit, error) {
	scanner := bufio.NewScanner(r)
	next := func() (string, bool) {
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}
	// 电路类型
	header, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: 缺少电路类型", types.ErrMalformedFile)
	}
	t, err := types.ParseCircuitType(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedFile, err)
	}
	c := &types.Circuit{Type: t}
	// 电压源
	line, _ := next()
	m := sourceLine.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: 电压源定义错误 %q", types.ErrMalformedFile, line)
	}
	pos, neg, value, err := parseNodes(m)
	if err != nil {
		return nil, fmt.Errorf("%w: 电压源定义错误 %q", types.ErrMalformedFile, line)
	}
	c.Source = types.VoltageSource{PositiveNode: pos, NegativeNode: neg, Value: value, Kind: types.SourceKind}
	// 电阻,匹配失败或达到上限即停止
	for len(c.Resistors) < types.MaxResistors {
		line, ok := next()
		if !ok {
			break
		}
		m := resistorLine.FindStringSubmatch(line)
		if m == nil {
			break
		}
		pos, neg, value, err := parseNodes(m)
		if err != nil {
			break
		}
		c.Resistors = append(c.Resistors, types.Resistor{PositiveNode: pos, NegativeNode: neg, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedFile, err)
	}
	return c, nil
}

// parseNodes 解析 正极/负极/数值 三个捕获组
func parseNodes(m []string) (pos, neg int, value float64, err error) {
	if pos, err = strconv.Atoi(m[1]); err != nil {
		return
	}
	if neg, err = strconv.Atoi(m[2]); err != nil {
		return
	}
	value, err = strconv.ParseFloat(m[3], 64)
	return
}

// ListSaved 列出目录中的电路文件
func ListSaved(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), types.FileExt) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
