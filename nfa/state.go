package nfa

import "sync/atomic"

// Epsilon is the symbol of edges that consume no input. Literal symbols are
// exactly one code point long, so the empty string never collides with them.
const Epsilon = ""

var stateID atomic.Int64

func nextStateID() int { return int(stateID.Add(1) - 1) }

// State is a node of the automaton graph. Several targets may be stored for
// the same symbol.
type State struct {
	id        int
	Accepting bool

	symbols     []string // insertion order of keys in transitions
	transitions map[string][]*State
}

func newState(accepting bool) *State {
	return &State{
		id:          nextStateID(),
		Accepting:   accepting,
		transitions: map[string][]*State{},
	}
}

// ID returns the creation-order identifier of the state.
func (s *State) ID() int { return s.id }

// AddTransition appends target to the states reachable on symbol.
func (s *State) AddTransition(symbol string, target *State) {
	if _, ok := s.transitions[symbol]; !ok {
		s.symbols = append(s.symbols, symbol)
	}
	s.transitions[symbol] = append(s.transitions[symbol], target)
}

// TransitionsFor returns the targets stored for symbol, nil if there are none.
func (s *State) TransitionsFor(symbol string) []*State {
	return s.transitions[symbol]
}

// Symbols lists the symbols with outgoing edges in the order they were first added.
func (s *State) Symbols() []string {
	return append([]string(nil), s.symbols...)
}
