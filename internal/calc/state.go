// Package calc implements the calculator's input state machine.
//
// State is a plain value and Apply is a pure transition: every command is
// defined for every reachable state and never fails. Numeric edge cases such
// as division by zero surface as IEEE infinities and NaN.
package calc

// Operator is a pending binary operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the printable symbol for op, or "" for OpNone.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return ""
}

// ID returns the button id used for op on the keypad ("add", "sub", ...).
func (op Operator) ID() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "sub"
	case OpMultiply:
		return "mul"
	case OpDivide:
		return "div"
	}
	return ""
}

// ParseOperator is the inverse of ID. The empty string maps to OpNone.
func ParseOperator(id string) (Operator, bool) {
	switch id {
	case "":
		return OpNone, true
	case "add":
		return OpAdd, true
	case "sub":
		return OpSubtract, true
	case "mul":
		return OpMultiply, true
	case "div":
		return OpDivide, true
	}
	return OpNone, false
}

func (op Operator) String() string {
	if op == OpNone {
		return "none"
	}
	return op.ID()
}

// apply evaluates a <op> b with float64 semantics. OpNone leaves a as is.
func (op Operator) apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	}
	return a
}

// State is the calculator's whole mutable state.
type State struct {
	// Previous is the accumulator the pending operator applies to.
	Previous float64
	// Buffer is the number being typed, exactly as typed. Never empty.
	Buffer string
	// Pending is OpNone when no operation awaits a second operand.
	Pending Operator
	// HasInput reports whether a new number has been started since the
	// last operator, equals or clear.
	HasInput bool
}

// New returns the default state.
func New() State {
	return State{Buffer: "0"}
}
