package bind

import (
	"fmt"

	"svconst/pkg/diag"
	"svconst/pkg/lexer"
)

func (b *Binder) addError(e string) {
	b.errors = append(b.errors, e)
}

func (b *Binder) addPositionedError(msg string, pos lexer.Position) {
	msg += " at " + diag.Yellow(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
	b.addError(msg)
}

func (b *Binder) addUndefinedIdentifierError(name string, pos lexer.Position) {
	b.addPositionedError(diag.Red("Undefined identifier")+" `"+diag.Blue(name)+"`", pos)
}

func (b *Binder) addUndefinedVariableError(name string, pos lexer.Position) {
	b.addPositionedError(diag.Red("Undefined variable")+" `"+diag.Blue(name)+"`", pos)
}

func (b *Binder) addUndefinedFunctionError(name string, pos lexer.Position) {
	b.addPositionedError(diag.Red("Undefined function")+" `"+diag.Blue(name)+"`", pos)
}

func (b *Binder) addRedeclarationError(name string, pos lexer.Position) {
	b.addPositionedError(diag.Red("Redeclaration of")+" `"+diag.Blue(name)+"`", pos)
}

func (b *Binder) addArgumentCountError(name string, want, got int, pos lexer.Position) {
	msg := diag.Red("Wrong argument count") + " for `" + diag.Blue(name) + "`" +
		fmt.Sprintf(": expected %d, found %d", want, got)
	b.addPositionedError(msg, pos)
}

func (b *Binder) addInvalidLiteralError(text string, pos lexer.Position) {
	b.addPositionedError(diag.Red("Invalid literal")+" `"+diag.Blue(text)+"`", pos)
}

func (b *Binder) addShiftUnsupportedError(op lexer.TokenType, pos lexer.Position) {
	msg := diag.Red("Shift operator") + " `" + diag.Blue(op.String()) + "` " +
		diag.Red("is not supported in constant expressions")
	b.addPositionedError(msg, pos)
}

func (b *Binder) addNotConstantError(name string, pos lexer.Position) {
	b.addPositionedError(diag.Red("Parameter")+" `"+diag.Blue(name)+"` "+diag.Red("is not a constant"), pos)
}

func (b *Binder) addDepthExceededError(name string, pos lexer.Position) {
	msg := diag.Red("Parameter") + " `" + diag.Blue(name) + "` " +
		diag.Red(fmt.Sprintf("exceeded the maximum call depth of %d", b.maxDepth))
	b.addPositionedError(msg, pos)
}

// GetErrors returns the list of semantic errors
func (b *Binder) GetErrors() []string {
	return b.errors
}
