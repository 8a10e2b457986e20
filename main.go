package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/mheil-dev/strcalc/api"
	"github.com/mheil-dev/strcalc/inspector"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		tuiMode     = flag.Bool("tui", false, "Start the interactive TUI inspector")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 8080, "API server port (used with -api-server)")
		precision   = flag.Int("precision", 64, "Engine bit width (rounded up to a multiple of 4)")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("strcalc %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *apiServer {
		runAPIServer(*apiPort)
		return
	}

	if *tuiMode {
		runTUI(*precision)
		return
	}

	if flag.NArg() > 0 {
		runOneShot(*precision, strings.Join(flag.Args(), " "))
		return
	}

	runREPL(*precision)
}

func runAPIServer(port int) {
	server := api.NewServer(port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	monitor := api.NewProcessMonitor(performShutdown)
	monitor.Start()

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}

func runTUI(precision int) {
	insp := inspector.New(precision)
	tui := inspector.NewTUI(insp)
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

// runOneShot evaluates a single command line given as CLI arguments and
// prints its result, e.g. `strcalc set 10` or `strcalc "add 5"`.
func runOneShot(precision int, line string) {
	insp := inspector.New(precision)
	if err := insp.ExecuteCommand(line); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(insp.GetOutput())
}

// runREPL reads commands from stdin until EOF, in the style of a debugger
// console but over a calc.Engine accumulator instead of a running VM.
func runREPL(precision int) {
	insp := inspector.New(precision)
	fmt.Printf("strcalc %s (precision=%d bits) - type 'help' for commands, Ctrl-D to exit\n", Version, precision)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		insp.ResetOutput()
		if err := insp.ExecuteCommand(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Print(insp.GetOutput())
	}
}

func printHelp() {
	fmt.Printf(`strcalc %s

Usage: strcalc [options] [command...]
       strcalc -tui
       strcalc -api-server [-port N]

With no command and no -tui/-api-server, strcalc reads commands from stdin
until EOF (a line-oriented REPL). With a command given on the command line,
it runs that single command and exits.

Options:
  -help              Show this help message
  -version           Show version information
  -precision N       Engine bit width, rounded up to a multiple of 4 (default: 64)
  -tui               Start the interactive TUI inspector
  -api-server        Start HTTP API server mode
  -port N            API server port (default: 8080, used with -api-server)

Commands (REPL / one-shot):
  set <v>                   load the accumulator
  add|sub|mul|div|mod <v>   arithmetic against the accumulator
  and|or|xor|andnot <v>     bitwise against the accumulator
  not|neg                   unary bitwise/arithmetic negate
  shl|shr|shrs <n>          shift the accumulator by n bits
  base bin|oct|dec|hex      set display base
  signed|unsigned           set print sign interpretation
  print [v]                 print the accumulator or a given value
  info [v]                  print sign/zero/negative/bit/popcount/carry
  clear                     zero the accumulator
  history                   show command history
`, Version)
}
