package app

import (
	"cadcalc/savings"
	"cadcalc/types"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// errExit 结束菜单循环
var errExit = errors.New("退出")

const retryPositive = "Invalid input. Please enter a valid positive number."

const retryPositiveInt = "Invalid input. Please enter a valid positive integer."

// SavingsApp 复利储蓄计算应用程序
type SavingsApp struct {
	*Prompter
	config Config
}

// NewSavingsApp 创建
func NewSavingsApp(r io.Reader, w io.Writer, config Config) *SavingsApp {
	return &SavingsApp{Prompter: NewPrompter(r, w), config: config}
}

// Run 运行菜单循环,选择 0、拒绝继续或输入结束时返回
func (a *SavingsApp) Run() error {
	for {
		err := a.menu()
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (a *SavingsApp) menu() error {
	a.Printf("1. Enter P, r, n, t. Find B.\n")
	a.Printf("2. Enter r, n, t, B. Find P.\n")
	a.Printf("3. Enter n, t, P, B. Find r.\n")
	a.Printf("4. Enter t, r, P, B. Find n.\n")
	a.Printf("5. Enter n, r, P, B. Find t.\n")
	a.Printf("6. Generate report for given year interval.\n")
	a.Printf("7. Compare two accounts.\n")
	a.Printf("0. Exit program.\n")
	choice, err := InRange(a.Prompter, "Enter your option (0-7): ",
		"Invalid input. Please enter an integer between 0 and 7, without any decimals.", 0, 7)
	if err != nil {
		return err
	}
	if err := a.Handle(choice); err != nil {
		return err
	}
	return a.continueOrExit()
}

// Handle 执行菜单项, 0 返回退出信号
func (a *SavingsApp) Handle(choice int) error {
	switch choice {
	case 0:
		a.Printf("Exiting the program. Goodbye!\n")
		return errExit
	case 1:
		return a.FindBalance()
	case 2:
		return a.FindPrincipal()
	case 3:
		return a.FindRate()
	case 4:
		return a.FindFrequency()
	case 5:
		return a.FindTime()
	case 6:
		return a.Report()
	case 7:
		return a.Compare()
	}
	return nil
}

func (a *SavingsApp) continueOrExit() error {
	for {
		s, err := a.Word("\nWould you like to perform another calculation? (y/n): ")
		if err != nil {
			return err
		}
		switch strings.ToLower(s) {
		case "y":
			a.Printf("\nReturning to menu...\n")
			return nil
		case "n":
			a.Printf("Exiting the program. Goodbye!\n")
			return errExit
		}
		a.Printf("Invalid input. Please enter 'y' for yes or 'n' for no.\n")
	}
}

// inputs 依次读取提示对应的数值
type inputs struct {
	p   *Prompter
	err error
}

func (v *inputs) number(prompt string) float64 {
	if v.err != nil {
		return 0
	}
	var f float64
	f, v.err = Positive[float64](v.p, prompt, retryPositive)
	return f
}

func (v *inputs) whole(prompt string) int {
	if v.err != nil {
		return 0
	}
	var n int
	n, v.err = Positive[int](v.p, prompt, retryPositiveInt)
	return n
}

// year 读取 [1, MaxYears] 内的年数
func (v *inputs) year(prompt string) int {
	if v.err != nil {
		return 0
	}
	var n int
	retry := fmt.Sprintf("Invalid input. Please enter a whole number of years between 1 and %d.", types.MaxYears)
	n, v.err = InRange(v.p, prompt, retry, 1, types.MaxYears)
	return n
}

const (
	askP  = "Enter the principal invested (P): "
	askR  = "Enter the interest rate (r in decimal): "
	askN  = "Enter the compounding frequency per year (n): "
	askT  = "Enter the number of years of investment (t): "
	askB  = "Enter the balance (B): "
	askT1 = "Enter the start year (t1): "
	askT2 = "Enter the end year (t2): "
)

// FindBalance 求终值
func (a *SavingsApp) FindBalance() error {
	a.Printf("Option 1 has been selected: Find B.\n")
	in := &inputs{p: a.Prompter}
	p, r, n, t := in.number(askP), in.number(askR), in.whole(askN), in.number(askT)
	if in.err != nil {
		return in.err
	}
	a.Printf("The balance (B) is: %.2f\n", savings.Balance(p, r, n, t))
	return nil
}

// FindPrincipal 求本金
func (a *SavingsApp) FindPrincipal() error {
	a.Printf("Option 2 has been selected: Find P.\n")
	in := &inputs{p: a.Prompter}
	r, n, t, b := in.number(askR), in.whole(askN), in.number(askT), in.number(askB)
	if in.err != nil {
		return in.err
	}
	a.Printf("The Principal invested (P) is: %.2f\n", savings.Principal(r, n, t, b))
	return nil
}

// FindRate 求利率
func (a *SavingsApp) FindRate() error {
	a.Printf("Option 3 has been selected: Find r.\n")
	in := &inputs{p: a.Prompter}
	n, t, p, b := in.whole(askN), in.number(askT), in.number(askP), in.number(askB)
	if in.err != nil {
		return in.err
	}
	a.Printf("The interest rate (r in decimal) is: %.3f\n", savings.Rate(n, t, p, b))
	return nil
}

// FindFrequency 求复利频率
func (a *SavingsApp) FindFrequency() error {
	a.Printf("Option 4 has been selected: Find n.\n")
	in := &inputs{p: a.Prompter}
	t, r, p, b := in.number(askT), in.number(askR), in.number(askP), in.number(askB)
	if in.err != nil {
		return in.err
	}
	n, err := savings.Frequency(t, r, p, b)
	if err != nil {
		a.Printf("No compounding frequency found that meets the balance criteria.\n")
		return nil
	}
	a.Printf("The compounding frequency per year (n) is: %d\n", n)
	return nil
}

// FindTime 求年数
func (a *SavingsApp) FindTime() error {
	a.Printf("Option 5 has been selected: Find t.\n")
	in := &inputs{p: a.Prompter}
	n, r, p, b := in.whole(askN), in.number(askR), in.number(askP), in.number(askB)
	if in.err != nil {
		return in.err
	}
	a.Printf("The time interval (t) is approximately: %.2f years.\n", savings.Time(n, r, p, b))
	return nil
}

// Report 生成年份区间报表,结束年份小于开始年份时重新询问
func (a *SavingsApp) Report() error {
	a.Printf("Option 6 has been selected: Generate report for given year interval.\n")
	in := &inputs{p: a.Prompter}
	p, r, n, t1, t2 := in.number(askP), in.number(askR), in.whole(askN), in.year(askT1), in.year(askT2)
	for in.err == nil && t2 < t1 {
		a.Printf("Invalid input for end year. Please ensure that the end year is greater than or equal to the start year.\n")
		t2 = in.year(askT2)
	}
	if in.err != nil {
		return in.err
	}
	rows, err := savings.Report(p, r, n, t1, t2)
	if err != nil {
		return err
	}
	if err := savings.WriteReport(a.out, rows); err != nil {
		return err
	}
	if path := a.config.PlotPath; path != "" {
		format := strings.TrimPrefix(filepath.Ext(path), ".")
		if format == "" {
			format = "png"
		}
		writeFile(path, func(w io.Writer) error { return savings.PlotReport(w, rows, format) })
	}
	return nil
}

// Compare 两账户对比, 利率按百分数输入
func (a *SavingsApp) Compare() error {
	a.Printf("Option 7 has been selected: Compare two accounts.\n")
	in := &inputs{p: a.Prompter}
	p := in.number(askP)
	r := in.number("Enter the interest rate (r in percent): ")
	t1 := in.year("Enter the number of years of investment for the first account (t1): ")
	n1 := in.whole("Enter the number of times interest is compounded per year for the first account (n1): ")
	n2 := in.whole("Enter the number of times interest is compounded per year for the second account (n2): ")
	if in.err != nil {
		return in.err
	}
	cmp, err := savings.Compare(p, r, t1, n1, n2)
	if err != nil {
		return err
	}
	a.Printf("Balance in the first account after %d years: %.2f\n", t1, cmp.Balance1)
	a.Printf("It would take approximately %d years and %d months for the balance in the second account to get as close as possible to the balance in the first account.\n", cmp.Years, cmp.Months)
	a.Printf("Balance in the second account at that time: %.2f\n", cmp.Balance2)
	return nil
}
