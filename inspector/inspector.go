// Package inspector implements an interactive command-driven front end over
// a single calc.Engine: an accumulator buffer that each command reads and/or
// replaces, mirroring the way a debugger REPL holds one mutable machine
// state and applies commands to it one at a time.
package inspector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mheil-dev/strcalc/calc"
)

// Inspector holds one calc.Engine, an accumulator value, and display
// preferences, and dispatches typed commands against them.
type Inspector struct {
	Engine      *calc.Engine
	Accumulator calc.Buffer

	Base   calc.Base
	Signed bool
	Upper  bool

	History     *CommandHistory
	LastCommand string
	Output      strings.Builder
}

// New creates an Inspector over a fresh Engine at the given bit precision.
func New(precision int) *Inspector {
	e := calc.New(precision)
	return &Inspector{
		Engine:      e,
		Accumulator: e.NewBuffer(),
		Base:        calc.BaseDec,
		Signed:      true,
		History:     NewCommandHistory(1000),
	}
}

// Printf appends formatted text to the output buffer.
func (insp *Inspector) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&insp.Output, format, args...)
}

// GetOutput returns the buffered output text.
func (insp *Inspector) GetOutput() string {
	return insp.Output.String()
}

// ResetOutput clears the buffered output text.
func (insp *Inspector) ResetOutput() {
	insp.Output.Reset()
}

// ExecuteCommand parses and runs one command line, recording it in history.
// An empty line repeats the previous command, matching REPL convention.
func (insp *Inspector) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)

	if cmdLine == "" {
		cmdLine = insp.LastCommand
	}

	if cmdLine != "" {
		insp.History.Add(cmdLine)
		insp.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	return insp.dispatch(cmd, args)
}

func (insp *Inspector) dispatch(cmd string, args []string) error {
	switch cmd {
	case "set":
		return insp.cmdSet(args)
	case "add", "+", "sub", "-", "mul", "*", "div", "/", "mod", "%",
		"and", "&", "andnot", "or", "|", "xor", "^":
		return insp.cmdBinary(cmd, args)
	case "not", "~":
		insp.Accumulator = insp.Engine.Not(insp.Accumulator, nil)
		return insp.cmdPrint(nil)
	case "neg":
		insp.Accumulator = insp.Engine.Neg(insp.Accumulator, nil)
		return insp.cmdPrint(nil)
	case "shl", "<<", "shr", ">>", "shrs":
		return insp.cmdShift(cmd, args)
	case "base":
		return insp.cmdBase(args)
	case "signed":
		insp.Signed = true
		return nil
	case "unsigned":
		insp.Signed = false
		return nil
	case "upper":
		insp.Upper = !insp.Upper
		return nil
	case "print", "p":
		return insp.cmdPrint(args)
	case "info", "i":
		return insp.cmdInfo(args)
	case "clear":
		insp.Engine.Zero(insp.Accumulator)
		return nil
	case "history", "hist":
		for _, c := range insp.History.GetAll() {
			insp.Printf("%s\n", c)
		}
		return nil
	case "help", "?":
		insp.printHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s (try 'help')", cmd)
	}
}

func (insp *Inspector) parseOperand(arg string) (calc.Buffer, error) {
	buf := insp.Engine.NewBuffer()
	base := 10
	s := arg
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	}
	if _, err := insp.Engine.FromString(sign, base, s, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (insp *Inspector) cmdSet(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: set <value>")
	}
	v, err := insp.parseOperand(args[0])
	if err != nil {
		return err
	}
	insp.Accumulator = v
	return insp.cmdPrint(nil)
}

func (insp *Inspector) cmdBinary(cmd string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: <op> <value>")
	}
	rhs, err := insp.parseOperand(args[0])
	if err != nil {
		return err
	}

	// Work on a copy: the accumulator may be the engine's scratch buffer,
	// which the operation overwrites before it has read all of its input.
	a, e := append(calc.Buffer(nil), insp.Accumulator...), insp.Engine
	var result calc.Buffer
	var opErr error

	switch cmd {
	case "add", "+":
		result, _ = e.Add(a, rhs, nil)
	case "sub", "-":
		result, _ = e.Sub(a, rhs, nil)
	case "mul", "*":
		result = e.Mul(a, rhs, nil)
	case "div", "/":
		result, _, opErr = e.Div(a, rhs, nil)
	case "mod", "%":
		result, opErr = e.Mod(a, rhs, nil)
	case "and", "&":
		result = e.And(a, rhs, nil)
	case "andnot":
		result = e.AndNot(a, rhs, nil)
	case "or", "|":
		result = e.Or(a, rhs, nil)
	case "xor", "^":
		result = e.Xor(a, rhs, nil)
	}

	if opErr != nil {
		return opErr
	}

	insp.Accumulator = result
	return insp.cmdPrint(nil)
}

func (insp *Inspector) cmdShift(cmd string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: <shift> <count>")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid shift count: %s", args[0])
	}

	// Work on a copy, as in cmdBinary.
	a, e, bits := append(calc.Buffer(nil), insp.Accumulator...), insp.Engine, insp.Engine.Precision()
	var result calc.Buffer
	switch cmd {
	case "shl", "<<":
		result = e.ShlI(a, n, bits, insp.Signed, nil)
	case "shr", ">>":
		result, _ = e.ShrI(a, n, bits, insp.Signed, nil)
	case "shrs":
		result, _ = e.ShrsI(a, n, bits, insp.Signed, nil)
	}

	insp.Accumulator = result
	return insp.cmdPrint(nil)
}

func (insp *Inspector) cmdBase(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: base <bin|oct|dec|hex>")
	}
	switch strings.ToLower(args[0]) {
	case "bin":
		insp.Base = calc.BaseBin
	case "oct":
		insp.Base = calc.BaseOct
	case "dec":
		insp.Base = calc.BaseDec
	case "hex":
		insp.Base = calc.BaseHex
	default:
		return fmt.Errorf("unknown base: %s", args[0])
	}
	return nil
}

func (insp *Inspector) cmdPrint(args []string) error {
	v := insp.Accumulator
	if len(args) == 1 {
		parsed, err := insp.parseOperand(args[0])
		if err != nil {
			return err
		}
		v = parsed
	}
	text, err := insp.Engine.Print(v, insp.Engine.Precision(), insp.Base, insp.Signed, insp.Upper)
	if err != nil {
		return err
	}
	insp.Printf("%s\n", text)
	return nil
}

func (insp *Inspector) cmdInfo(args []string) error {
	v := insp.Accumulator
	if len(args) == 1 {
		parsed, err := insp.parseOperand(args[0])
		if err != nil {
			return err
		}
		v = parsed
	}
	bits := insp.Engine.Precision()
	insp.Printf("sign=%d zero=%t negative=%t highestBit=%d lowestBit=%d popcount=%d carry=%t\n",
		insp.Engine.Sign(v),
		insp.Engine.IsZero(v, bits),
		insp.Engine.IsNegative(v),
		insp.Engine.HighestSetBit(v),
		insp.Engine.LowestSetBit(v),
		insp.Engine.Popcount(v, bits),
		insp.Engine.CarryFlag(),
	)
	return nil
}

func (insp *Inspector) printHelp() {
	insp.Printf(`Commands:
  set <v>              load the accumulator
  add|sub|mul|div|mod <v>   arithmetic against the accumulator
  and|or|xor|andnot <v> bitwise against the accumulator
  not|neg               unary bitwise/arithmetic negate
  shl|shr|shrs <n>      shift the accumulator by n bits
  base bin|oct|dec|hex  set display base
  signed|unsigned       set print sign interpretation
  upper                 toggle uppercase hex digits
  print [v]             print the accumulator or a given value
  info [v]              print sign/zero/negative/bit/popcount/carry
  clear                 zero the accumulator
  history               show command history
  help                  show this message
`)
}
