package inspector

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mheil-dev/strcalc/calc"
)

// TUI is the text user interface wrapped around an Inspector: a value panel
// showing the accumulator in decimal, hex and binary, a flags panel, a history panel, and
// a command input line.
type TUI struct {
	Inspector *Inspector
	App       *tview.Application
	Pages     *tview.Pages

	MainLayout *tview.Flex

	ValueView   *tview.TextView
	FlagsView   *tview.TextView
	HistoryView *tview.TextView
	OutputView  *tview.TextView
	CommandLine *tview.InputField
}

// NewTUI builds a TUI around the given Inspector.
func NewTUI(insp *Inspector) *TUI {
	t := &TUI{
		Inspector: insp,
		App:       tview.NewApplication(),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	t.RefreshAll()

	return t
}

func (t *TUI) initializeViews() {
	t.ValueView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	t.ValueView.SetBorder(true).SetTitle(" Accumulator ")

	t.FlagsView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	t.FlagsView.SetBorder(true).SetTitle(" Flags ")

	t.HistoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.HistoryView.SetBorder(true).SetTitle(" History ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandLine = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandLine.SetBorder(true).SetTitle(" Command ")
	t.CommandLine.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.ValueView, 4, 0, false).
		AddItem(t.FlagsView, 3, 0, false)

	leftPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, false).
		AddItem(t.HistoryView, 0, 1, false)

	content := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftPanel, 0, 1, false).
		AddItem(t.OutputView, 0, 2, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 4, false).
		AddItem(t.CommandLine, 3, 0, true)

	t.Pages = tview.NewPages().AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandLine.GetText()
	if cmd == "" {
		return
	}
	t.executeCommand(cmd)
	t.CommandLine.SetText("")
}

func (t *TUI) executeCommand(cmd string) {
	t.Inspector.ResetOutput()

	err := t.Inspector.ExecuteCommand(cmd)
	output := t.Inspector.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	t.RefreshAll()
}

// WriteOutput appends text to the output view and scrolls to the bottom.
func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll redraws every panel and the application frame.
func (t *TUI) RefreshAll() {
	t.updateValueView()
	t.updateFlagsView()
	t.updateHistoryView()
	t.App.Draw()
}

func (t *TUI) updateValueView() {
	e := t.Inspector.Engine
	v := t.Inspector.Accumulator
	bits := e.Precision()

	dec, _ := e.Print(v, bits, calc.BaseDec, true, false)
	hex, _ := e.Print(v, bits, calc.BaseHex, false, t.Inspector.Upper)
	bin, _ := e.Print(v, bits, calc.BaseBin, false, false)

	lines := []string{
		fmt.Sprintf("dec: %s", dec),
		fmt.Sprintf("hex: %s", hex),
		fmt.Sprintf("bin: %s", bin),
	}
	t.ValueView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateFlagsView() {
	e := t.Inspector.Engine
	v := t.Inspector.Accumulator
	bits := e.Precision()

	flag := func(name string, set bool) string {
		if set {
			return fmt.Sprintf("[green]%s[white]", name)
		}
		return strings.ToLower(name)
	}

	line := fmt.Sprintf("%s %s %s  carry=%t  highBit=%d  popcount=%d",
		flag("Z", e.IsZero(v, bits)),
		flag("N", e.IsNegative(v)),
		flag("S", t.Inspector.Signed),
		e.CarryFlag(),
		e.HighestSetBit(v),
		e.Popcount(v, bits),
	)
	t.FlagsView.SetText(line)
}

func (t *TUI) updateHistoryView() {
	lines := t.Inspector.History.GetAll()
	t.HistoryView.SetText(strings.Join(lines, "\n"))
	t.HistoryView.ScrollToEnd()
}

// Run starts the tview application event loop.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandLine).Run()
}
