package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oarkflow/numo"
)

var (
	exprFlag    string
	fileFlags   []string
	interactive bool
	configPath  string
	debug       bool
)

var (
	resultColor = color.New(color.FgGreen)
	noneColor   = color.New(color.Faint)
	errorColor  = color.New(color.FgRed)
)

func main() {
	root := &cobra.Command{
		Use:          "numo",
		Short:        "Numo - a text-line calculator with units, currencies and translation",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVarP(&exprFlag, "expression", "e", "", "expression to evaluate (e.g. '2 + 2' or '1 km to m')")
	root.Flags().StringSliceVarP(&fileFlags, "file", "f", nil, "file containing expressions, one per line (repeatable)")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "run in interactive mode")
	root.Flags().StringVar(&configPath, "config", "", "path to JSON config file")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := numo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case exprFlag != "":
		engine, err := cfg.Engine(logger)
		if err != nil {
			return err
		}
		printResults([]string{exprFlag}, engine.Calculate(ctx, []string{exprFlag}))
		return nil
	case len(fileFlags) > 0:
		return runFiles(ctx, cfg, logger)
	default:
		engine, err := cfg.Engine(logger)
		if err != nil {
			return err
		}
		return runInteractive(ctx, engine)
	}
}

func runFiles(ctx context.Context, cfg numo.Config, logger *zap.Logger) error {
	runners, err := cfg.BuildRunners()
	if err != nil {
		return err
	}
	bc := numo.NewBatchCalculator(0, numo.WithRunners(runners...), numo.WithLogger(logger))
	results, err := bc.CalculateFiles(ctx, fileFlags)
	if err != nil {
		return err
	}
	for _, fr := range results {
		if fr.Error != nil {
			errorColor.Fprintf(os.Stderr, "%s: %v\n", fr.Filename, fr.Error)
			continue
		}
		if len(results) > 1 {
			fmt.Printf("# %s\n", fr.Filename)
		}
		printResults(fr.Lines, fr.Results)
	}
	return numo.CollectErrors(results)
}

func printResults(lines []string, results []numo.Result) {
	for i, r := range results {
		if r.OK {
			fmt.Printf("%-30s = %s\n", lines[i], resultColor.Sprint(r.Value))
		} else {
			fmt.Printf("%-30s   %s\n", lines[i], noneColor.Sprint("no result"))
		}
	}
}

func runInteractive(ctx context.Context, engine *numo.Numo) error {
	fmt.Println("Numo Interactive Shell (type 'exit' to quit, 'reset' to clear variables)")
	fmt.Println("Examples:")
	fmt.Println("  2 + 2")
	fmt.Println("  1 km to m")
	fmt.Println("  hello in spanish")
	fmt.Println("  100 usd to eur")
	fmt.Println(strings.Repeat("-", 40))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "reset":
			engine.Reset()
			fmt.Println("variables cleared")
			continue
		}
		results := engine.Calculate(ctx, []string{line})
		if len(results) == 1 && results[0].OK {
			resultColor.Println(results[0].Value)
		} else {
			noneColor.Println("could not process expression")
		}
	}
}
