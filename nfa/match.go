package nfa

import "unicode/utf8"

// Test reports whether f accepts the whole of input.
//
// The search is a depth-first exploration of every path, so an ambiguous
// automaton can take exponential time. Nothing is memoized.
func Test(f *Fragment, input string) bool {
	return f.Entry.test(input, visitedSet{})
}

// Test reports whether f accepts the whole of input.
func (f *Fragment) Test(input string) bool { return Test(f, input) }

// visitedSet holds the states already explored at one input position. It is
// shared along epsilon edges and replaced whenever a symbol is consumed.
type visitedSet map[*State]struct{}

func (s *State) test(input string, visited visitedSet) bool {
	if _, ok := visited[s]; ok {
		return false
	}
	visited[s] = struct{}{}

	if input == "" {
		if s.Accepting {
			return true
		}
		for _, next := range s.transitions[Epsilon] {
			if next.test(input, visited) {
				return true
			}
		}
		return false
	}

	// invalid UTF-8 is consumed one byte at a time
	_, size := utf8.DecodeRuneInString(input)
	symbol, rest := input[:size], input[size:]

	for _, next := range s.transitions[symbol] {
		if next.test(rest, visitedSet{}) {
			return true
		}
	}
	for _, next := range s.transitions[Epsilon] {
		if next.test(input, visited) {
			return true
		}
	}
	return false
}
