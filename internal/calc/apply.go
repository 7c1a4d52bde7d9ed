package calc

// Apply returns the state that results from running c against s.
func Apply(s State, c Command) State {
	switch c.Kind {
	case KindDigit:
		if c.Digit >= '0' && c.Digit <= '9' {
			appendDigit(&s, c.Digit)
		}
	case KindDot:
		appendDot(&s)
	case KindSign:
		toggleSign(&s)
	case KindBackspace:
		backspace(&s)
	case KindOperator:
		if c.Op == OpNone {
			break
		}
		if s.HasInput {
			if s.Pending != OpNone {
				commit(&s)
			} else {
				s.Previous = ParseNumber(s.Buffer)
			}
			s.HasInput = false
		}
		s.Pending = c.Op
	case KindEquals:
		if s.Pending == OpNone {
			break
		}
		commit(&s)
		s.Pending = OpNone
		s.Buffer = FormatNumber(s.Previous)
	case KindClearEntry:
		clearEntry(&s)
	case KindClearAll:
		s = New()
	}
	return s
}

// ApplyAll folds cmds over s from left to right.
func ApplyAll(s State, cmds ...Command) State {
	for _, c := range cmds {
		s = Apply(s, c)
	}
	return s
}

// commit folds the buffer into Previous using the pending operator.
func commit(s *State) {
	s.Previous = s.Pending.apply(s.Previous, ParseNumber(s.Buffer))
}
