// Package nfa builds nondeterministic finite automata by Thompson's
// construction and tests strings against them.
//
// Fragments are composed with Char, Empty, Concat, Or, Rep, PlusRep and
// QuestionRep. The combinators splice epsilon edges into the states of their
// arguments rather than copying them:
//
//	f := nfa.Concat(nfa.Char("a"), nfa.Rep(nfa.Or(nfa.Char("b"), nfa.Char("c"))))
//	f.Test("abcb") // true
package nfa
