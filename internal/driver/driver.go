// Package driver runs the elaboration pipeline: source text through the
// lexer, parser and binder, then constant evaluation of every parameter.
package driver

import (
	"fmt"
	"os"

	"svconst/pkg/diag"
	"svconst/pkg/eval"
	"svconst/pkg/lexer"
	"svconst/pkg/parser"
	"svconst/pkg/parser/bind"

	"github.com/charmbracelet/log"
)

type Driver struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	Expr       string // Inline expression to evaluate against the design
	SourceFile string // Path to the source file
}

// Run elaborates the source file (when given), reports diagnostics, prints
// each parameter's constant value, and finally evaluates the inline
// expression if one was requested.
func (opts *Driver) Run() error {
	binder := bind.NewBinder()

	if opts.SourceFile != "" {
		log.Info("Elaborating file", "file", opts.SourceFile)

		input, err := os.ReadFile(opts.SourceFile)
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}

		l := lexer.NewLexer(string(input))
		p := parser.NewParser(l)
		file := p.ParseFile()

		syntaxErrors := p.Errors()
		if len(syntaxErrors) > 0 {
			fmt.Println(diag.BrightRed("=== Syntax Errors ==="))
			for _, e := range syntaxErrors {
				fmt.Println(e)
			}
			return fmt.Errorf("parsing failed with %d errors", len(syntaxErrors))
		}

		binder.BindFile(file)

		semanticErrors := binder.GetErrors()
		if len(semanticErrors) > 0 {
			fmt.Println(diag.BrightRed("=== Semantic Errors ==="))
			for _, e := range semanticErrors {
				fmt.Println(e)
			}
			return fmt.Errorf("elaboration failed with %d errors", len(semanticErrors))
		}

		fmt.Println(diag.Green("=== Elaborated Parameters ==="))
		for _, sym := range binder.Parameters() {
			if !sym.Value.Valid {
				fmt.Printf("%s = %s\n", diag.Cyan(sym.Name), diag.Gray("<not a constant>"))
				continue
			}
			if opts.Verbose {
				fmt.Printf("%s = %s %s\n", diag.Cyan(sym.Name), sym.Value.Integer.String(),
					diag.Gray(describe(sym.Value)))
				continue
			}
			fmt.Printf("%s = %s\n", diag.Cyan(sym.Name), sym.Value.Integer.String())
		}
	}

	if opts.Expr != "" {
		return opts.runExpression(binder)
	}

	return nil
}

// runExpression parses, binds and evaluates the -e expression in the
// context of the already-elaborated declarations.
func (opts *Driver) runExpression(binder *bind.Binder) error {
	l := lexer.NewLexer(opts.Expr)
	p := parser.NewParser(l)
	expr := p.ParseExpression()

	if syntaxErrors := p.Errors(); len(syntaxErrors) > 0 {
		fmt.Println(diag.BrightRed("=== Syntax Errors ==="))
		for _, e := range syntaxErrors {
			fmt.Println(e)
		}
		return fmt.Errorf("parsing failed with %d errors", len(syntaxErrors))
	}

	before := len(binder.GetErrors())
	node := binder.BindExpression(expr)

	if semanticErrors := binder.GetErrors()[before:]; len(semanticErrors) > 0 {
		fmt.Println(diag.BrightRed("=== Semantic Errors ==="))
		for _, e := range semanticErrors {
			fmt.Println(e)
		}
		return fmt.Errorf("binding failed with %d errors", len(semanticErrors))
	}

	ev := eval.NewEvaluator(eval.WithMaxDepth(binder.MaxCallDepth()))
	value := ev.Evaluate(node)
	if err := ev.Err(); err != nil {
		return fmt.Errorf("evaluating expression: %w", err)
	}

	fmt.Printf("%s = %s\n", diag.Cyan(opts.Expr), value.String())
	return nil
}

func describe(cv eval.ConstantValue) string {
	sign := "unsigned"
	if cv.Integer.Signed() {
		sign = "signed"
	}
	return fmt.Sprintf("(%d bits, %s)", cv.Integer.Width(), sign)
}
