package nfa

import "errors"

// ErrNoFragments is the panic value of ConcatAll and OrAll on an empty slice.
var ErrNoFragments = errors.New("nfa: at least one fragment is required")

// Fragment is a piece of automaton with a single entry and a single exit.
//
// Combinators take ownership of their arguments: flags and edges of the
// argument states are changed in place, so a fragment passed to a combinator
// must not be used on its own afterwards.
type Fragment struct {
	Entry *State
	Exit  *State
}

// Char returns a fragment matching exactly symbol. Char(Epsilon) matches the
// empty string.
func Char(symbol string) *Fragment {
	entry, exit := newState(false), newState(true)
	entry.AddTransition(symbol, exit)
	return &Fragment{Entry: entry, Exit: exit}
}

// Empty returns a fragment matching only the empty string.
func Empty() *Fragment { return Char(Epsilon) }

func concatPair(first, second *Fragment) *Fragment {
	first.Exit.Accepting = false
	second.Exit.Accepting = true
	first.Exit.AddTransition(Epsilon, second.Entry)
	return &Fragment{Entry: first.Entry, Exit: second.Exit}
}

// Concat wires the fragments one after another.
func Concat(first *Fragment, rest ...*Fragment) *Fragment {
	out := first
	for _, f := range rest {
		out = concatPair(out, f)
	}
	return out
}

// ConcatAll is Concat over a slice. It panics with ErrNoFragments if frags is empty.
func ConcatAll(frags []*Fragment) *Fragment {
	if len(frags) == 0 {
		panic(ErrNoFragments)
	}
	return Concat(frags[0], frags[1:]...)
}

func orPair(first, second *Fragment) *Fragment {
	first.Exit.Accepting = false
	second.Exit.Accepting = false

	entry, exit := newState(false), newState(true)
	entry.AddTransition(Epsilon, first.Entry)
	entry.AddTransition(Epsilon, second.Entry)
	first.Exit.AddTransition(Epsilon, exit)
	second.Exit.AddTransition(Epsilon, exit)
	return &Fragment{Entry: entry, Exit: exit}
}

// Or returns a fragment matching any one of the fragments.
func Or(first *Fragment, rest ...*Fragment) *Fragment {
	out := first
	for _, f := range rest {
		out = orPair(out, f)
	}
	return out
}

// OrAll is Or over a slice. It panics with ErrNoFragments if frags is empty.
func OrAll(frags []*Fragment) *Fragment {
	if len(frags) == 0 {
		panic(ErrNoFragments)
	}
	return Or(frags[0], frags[1:]...)
}

// Rep turns f into zero or more repetitions of itself and returns it.
func Rep(f *Fragment) *Fragment {
	f.Entry.AddTransition(Epsilon, f.Exit)
	f.Exit.AddTransition(Epsilon, f.Entry)
	return f
}

// PlusRep turns f into one or more repetitions of itself and returns it.
func PlusRep(f *Fragment) *Fragment {
	f.Exit.AddTransition(Epsilon, f.Entry)
	return f
}

// QuestionRep makes f optional and returns it.
func QuestionRep(f *Fragment) *Fragment {
	f.Entry.AddTransition(Epsilon, f.Exit)
	return f
}
