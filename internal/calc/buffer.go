package calc

import "strings"

// The helpers below edit the input buffer in place of State.Buffer.

func appendDigit(s *State, d byte) {
	if !s.HasInput {
		s.HasInput = true
		s.Buffer = string(d)
		return
	}
	s.Buffer += string(d)
}

func appendDot(s *State) {
	if strings.Contains(s.Buffer, ".") {
		return
	}
	s.Buffer += "."
	s.HasInput = true
}

func toggleSign(s *State) {
	if !s.HasInput {
		return
	}
	if strings.HasPrefix(s.Buffer, "-") {
		s.Buffer = s.Buffer[1:]
	} else {
		s.Buffer = "-" + s.Buffer
	}
}

// backspace removes the last character. An emptied buffer reads "0" again.
func backspace(s *State) {
	if len(s.Buffer) > 0 {
		s.Buffer = s.Buffer[:len(s.Buffer)-1]
	}
	if len(s.Buffer) == 0 {
		s.Buffer = "0"
		s.HasInput = false
	}
}

func clearEntry(s *State) {
	s.Buffer = "0"
	s.HasInput = false
}
