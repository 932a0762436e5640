// Command egret generates test strings from regex patterns. Patterns
// come from the -r flag, a CUE suite file, or an interactive prompt.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nickomang/egret"
	"github.com/Nickomang/egret/configs"
	"github.com/Nickomang/egret/logs"
	"github.com/peterh/liner"
)

func main() {
	var (
		pattern     = flag.String("r", "", "regex pattern to process")
		suitePath   = flag.String("suite", "", "CUE suite file with patterns to process")
		interactive = flag.Bool("i", false, "read patterns interactively")
		limit       = flag.Int("limit", 32, "maximum test strings per pattern")
		showStats   = flag.Bool("stats", false, "print pipeline stats after the run")
		debug       = flag.Bool("log-debug", false, "set log level to debug")
	)
	flag.Parse()

	if *debug {
		logs.Level.Set(slog.LevelDebug)
	}
	logger := logs.New(os.Stderr)

	st := egret.NewStats()
	var err error
	switch {
	case *interactive:
		err = runInteractive(os.Stdout, logger, *limit, st)
	case *suitePath != "":
		err = runSuite(os.Stdout, logger, *suitePath, st)
	case *pattern != "":
		err = runPattern(os.Stdout, logger, *pattern, *limit, st)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}

	if *showStats {
		fmt.Print(st)
	}
}

func runPattern(w io.Writer, logger *slog.Logger, pattern string, limit int, st *egret.Stats) error {
	re, err := egret.Compile(pattern)
	if err != nil {
		return err
	}
	for _, warning := range re.Warnings() {
		logger.Warn(warning, "regex", pattern)
	}
	logger.Debug("compiled", "regex", pattern, "tokens", re.TokenCount())

	for _, s := range re.GenTestStrings(limit) {
		fmt.Fprintf(w, "%q\n", s)
	}
	re.AddStats(st)
	return nil
}

func runSuite(w io.Writer, logger *slog.Logger, path string, st *egret.Stats) error {
	suites, err := configs.NewLoader(path).Suites()
	if err != nil {
		return err
	}
	for _, suite := range suites {
		fmt.Fprintf(w, "# suite %s\n", suite.Name)
		for _, pattern := range suite.Patterns {
			fmt.Fprintf(w, "## %s\n", pattern)
			if err := runPattern(w, logger, pattern, suite.Limit, st); err != nil {
				return fmt.Errorf("suite %s: %s: %w", suite.Name, pattern, err)
			}
		}
	}
	return nil
}

func runInteractive(w io.Writer, logger *slog.Logger, limit int, st *egret.Stats) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := ""
	if dir, err := os.UserConfigDir(); err == nil {
		historyPath = filepath.Join(dir, "egret-history")
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("egret> ")
		if err != nil {
			switch err {
			case io.EOF, liner.ErrPromptAborted:
				return saveHistory(line, historyPath, logger)
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		re, err := egret.Compile(input)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprint(w, re.DumpTokens())
		for _, warning := range re.Warnings() {
			fmt.Fprintf(w, "warning: %s\n", warning)
		}
		for _, s := range re.GenTestStrings(limit) {
			fmt.Fprintf(w, "%q\n", s)
		}
		re.AddStats(st)
	}
}

func saveHistory(line *liner.State, historyPath string, logger *slog.Logger) error {
	if historyPath == "" {
		return nil
	}
	f, err := os.Create(historyPath)
	if err != nil {
		logger.Warn("create history file", "err", err)
		return nil
	}
	defer f.Close()
	line.WriteHistory(f)
	return nil
}
