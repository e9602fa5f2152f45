package nfa

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// States returns every state reachable from the entry, breadth first. The
// entry is always first; edges are followed in insertion order.
func (f *Fragment) States() []*State {
	seen := linkedhashset.New(f.Entry)
	queue := linkedlistqueue.New()
	queue.Enqueue(f.Entry)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		s := v.(*State)
		for _, sym := range s.symbols {
			for _, next := range s.transitions[sym] {
				if seen.Contains(next) {
					continue
				}
				seen.Add(next)
				queue.Enqueue(next)
			}
		}
	}

	out := make([]*State, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(*State))
	}
	return out
}

// Alphabet returns the non-epsilon symbols used by reachable edges, in order
// of first appearance.
func (f *Fragment) Alphabet() []string {
	seen := linkedhashset.New()
	for _, s := range f.States() {
		for _, sym := range s.symbols {
			if sym != Epsilon {
				seen.Add(sym)
			}
		}
	}
	out := make([]string, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(string))
	}
	return out
}

// Stats summarizes the reachable part of a fragment.
type Stats struct {
	States       int
	Accepting    int
	Edges        int
	EpsilonEdges int
}

func (f *Fragment) Stats() Stats {
	var st Stats
	for _, s := range f.States() {
		st.States++
		if s.Accepting {
			st.Accepting++
		}
		for sym, targets := range s.transitions {
			st.Edges += len(targets)
			if sym == Epsilon {
				st.EpsilonEdges += len(targets)
			}
		}
	}
	return st
}
