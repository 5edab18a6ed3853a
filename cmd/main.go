package main

import (
	"flag"
	"fmt"
	"os"

	"svconst/internal/driver"
	"svconst/internal/logger"
	"svconst/pkg/diag"

	"github.com/charmbracelet/log"
)

// Main entry point for the svconst constant evaluator.
func main() {
	options := driver.Driver{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.Expr, "e", "", "Evaluate an inline expression")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		diag.EnableColor(false)
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if options.SourceFile == "" && options.Expr == "" {
		log.Fatal("No input provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	err := options.Run()
	if err != nil {
		log.Fatal("Evaluation failed", "error", err)
	}
}
