package app

import (
	"bufio"
	"cadcalc/utils"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"unicode"
	"unicode/utf8"
)

// Prompter 提示并逐个读取空白分隔的输入
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// MaxWord 单个输入的最大长度,超出部分整体丢弃并作为无效输入
var MaxWord = 4096

// oversized 超长输入的替代值,任何解析都不会接受
var oversized = []byte("<too long>")

// NewPrompter 创建
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, MaxWord), 2*MaxWord)
	scanner.Split((&wordSplitter{}).split)
	return &Prompter{scanner: scanner, out: w}
}

// wordSplitter 按空白切分,超长的词不会导致 bufio.ErrTooLong
type wordSplitter struct {
	skipping bool // 正在丢弃超长词的剩余部分
}

func (s *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if s.skipping {
		for i := 0; i < len(data); {
			r, width := utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) {
				s.skipping = false
				return i, oversized, nil
			}
			i += width
		}
		if atEOF {
			s.skipping = false
			return len(data), oversized, nil
		}
		return len(data), nil, nil
	}
	advance, token, err := bufio.ScanWords(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= MaxWord {
		s.skipping = true
		return len(data), nil, nil
	}
	return advance, token, err
}

// Printf 输出到终端
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Word 读取一个输入,输入结束时返回 io.EOF
func (p *Prompter) Word(prompt string) (string, error) {
	p.Printf("%s", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Ask 重复提示直到 parse 成功
func Ask[T any](p *Prompter, prompt, retry string, parse func(string) (T, error)) (T, error) {
	for {
		s, err := p.Word(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(s)
		if err == nil {
			return v, nil
		}
		p.Printf("%s\n", retry)
	}
}

// Positive 重复提示直到得到正数
func Positive[T utils.Number](p *Prompter, prompt, retry string) (T, error) {
	return Ask(p, prompt, retry, utils.ParsePositive[T])
}

// InRange 重复提示直到得到 [lo, hi] 内的整数
func InRange(p *Prompter, prompt, retry string, lo, hi int) (int, error) {
	return Ask(p, prompt, retry, func(s string) (int, error) {
		return utils.ParseInRange(s, lo, hi)
	})
}

// ignoreEOF 输入结束视为正常退出
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeFile 创建文件并写入导出内容,失败只记录日志
func writeFile(path string, render func(w io.Writer) error) {
	file, err := os.Create(path)
	if err != nil {
		log.Println(err)
		return
	}
	defer file.Close()
	if err := render(file); err != nil {
		log.Printf("导出 %s 失败: %v", path, err)
	}
}
