package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/saggiyogesh/recyclerlistview/layoutmanager"
)

func main() {
	var (
		count   = flag.Int("count", 10000, "Number of items in the data set")
		grid    = flag.Bool("grid", false, "Use the grid provider with column spans")
		maxSpan = flag.Int("span", 4, "Row capacity in grid units (grid mode)")
		debug   = flag.String("debug", "", "Write layout debug logs to this file")
	)
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "demo requires a terminal")
		os.Exit(1)
	}

	if *debug != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*debug}
		logger, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		layoutmanager.SetLogger(logger)
	}

	m := newDemoModel(*count, *grid, *maxSpan)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
