package calc

// Kind identifies a command.
type Kind int

const (
	KindDigit Kind = iota
	KindDot
	KindSign
	KindBackspace
	KindOperator
	KindEquals
	KindClearEntry
	KindClearAll
)

var kindNames = [...]string{
	KindDigit:      "digit",
	KindDot:        "dot",
	KindSign:       "sign",
	KindBackspace:  "backspace",
	KindOperator:   "operator",
	KindEquals:     "equals",
	KindClearEntry: "clearEntry",
	KindClearAll:   "clearAll",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Command is a tagged variant. Digit is set only for KindDigit and Op only
// for KindOperator.
type Command struct {
	Kind  Kind
	Digit byte
	Op    Operator
}

// Commands without a payload.
var (
	Dot        = Command{Kind: KindDot}
	Sign       = Command{Kind: KindSign}
	Backspace  = Command{Kind: KindBackspace}
	Equals     = Command{Kind: KindEquals}
	ClearEntry = Command{Kind: KindClearEntry}
	ClearAll   = Command{Kind: KindClearAll}
)

// Digit returns the command entering d, which should be '0' through '9'.
func Digit(d byte) Command {
	return Command{Kind: KindDigit, Digit: d}
}

// Op returns the command selecting op as the pending operator.
func Op(op Operator) Command {
	return Command{Kind: KindOperator, Op: op}
}

func (c Command) String() string {
	switch c.Kind {
	case KindDigit:
		return "digit(" + string(c.Digit) + ")"
	case KindOperator:
		return "operator(" + c.Op.String() + ")"
	}
	return c.Kind.String()
}
