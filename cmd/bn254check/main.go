// Command bn254check runs the bn254 package's ROM self-checks and prints a
// colored pass/fail report, mirroring the teacher's CompileWithPuyaPy
// pattern of shelling out to a step and reporting its outcome, but for an
// in-process verification pass instead of an external compiler.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"

	"github.com/giuliop/bn254/internal/logz"
	"github.com/giuliop/bn254/selfcheck"
)

// config lists checks to leave out of the report and the failure count
// (every check still runs) and sets how verbose to be; loaded from an
// optional YAML file named by -config.
type config struct {
	Skip    []string `yaml:"skip"`
	Verbose bool     `yaml:"verbose"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfgPath := ""
	for i, a := range args {
		if a == "-config" && i+1 < len(args) {
			cfgPath = args[i+1]
		}
	}

	cfg := config{}
	if cfgPath != "" {
		data, err := os.ReadFile(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			return 2
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
			return 2
		}
	}
	if cfg.Verbose {
		logz.SetLevel("debug")
	} else {
		logz.SetLevel("info")
	}

	out := colorable.NewColorableStdout()
	useColor := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if useColor {
		probeTerminalSize()
	}

	skip := make(map[string]bool, len(cfg.Skip))
	for _, name := range cfg.Skip {
		skip[name] = true
	}

	results := selfcheck.Run(context.Background())
	failed := 0
	for _, r := range results {
		if skip[r.Name] {
			continue
		}
		if r.Passed() {
			printLine(out, useColor, 32, "PASS", r.Name, "")
		} else {
			failed++
			printLine(out, useColor, 31, "FAIL", r.Name, r.Err.Error())
		}
	}
	if failed > 0 {
		fmt.Fprintf(out, "%d check(s) failed\n", failed)
		return 1
	}
	fmt.Fprintln(out, "all checks passed")
	return 0
}

func printLine(out io.Writer, useColor bool, ansiColor int, status, name, detail string) {
	line := fmt.Sprintf("[%s] %s", status, name)
	if detail != "" {
		line += ": " + detail
	}
	if useColor {
		fmt.Fprintf(out, "\x1b[%dm%s\x1b[0m\n", ansiColor, line)
	} else {
		fmt.Fprintln(out, line)
	}
}

// probeTerminalSize cross-checks go-isatty's terminal detection against the
// platform's own ioctl-backed winsize query, logging (not failing) if the
// terminal doesn't answer it.
func probeTerminalSize() {
	if _, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ); err != nil {
		logz.L.Debug().Err(err).Msg("could not query terminal size")
	}
}
