package eval

// ParameterSymbol is a design parameter. Its value is computed once during
// elaboration and read back verbatim by every reference.
type ParameterSymbol struct {
	Name  string
	Value ConstantValue
}

// VariableSymbol identifies a local variable or formal argument. Bindings
// live in frames and are keyed by symbol identity, so two symbols with the
// same name never alias.
type VariableSymbol struct {
	Name string
}

// SubroutineSymbol is a constant function: its formal arguments in
// declaration order plus the bound body to evaluate on call.
type SubroutineSymbol struct {
	Name      string
	Arguments []*VariableSymbol
	Body      Node
}
