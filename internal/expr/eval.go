package expr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"thompson/nfa"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrArity           = errors.New("wrong number of arguments")
	ErrArgument        = errors.New("invalid argument")
	ErrUndefined       = errors.New("undefined binding")
	ErrCycle           = errors.New("binding refers to itself")
)

// Compile parses data and builds the fragment it describes.
func Compile(data string, ctx *Context) (*nfa.Fragment, error) {
	script, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return script.Build(ctx)
}

// Build registers the bindings of s in ctx and evaluates the body.
func (s *Script) Build(ctx *Context) (*nfa.Fragment, error) {
	for _, b := range s.Bindings {
		if err := ctx.Env.Set(b); err != nil {
			return nil, err
		}
	}
	return s.Body.Eval(ctx)
}

// Eval builds a new fragment for e. A reference to a binding evaluates the
// bound expression again, so each use gets states of its own.
func (e *Expr) Eval(ctx *Context) (*nfa.Fragment, error) {
	if !e.Call {
		return e.resolve(ctx)
	}

	switch e.Name {
	case "char":
		if len(e.Args) != 1 {
			return nil, e.arityErr("1")
		}
		arg := e.Args[0]
		if arg.Symbol == nil {
			return nil, fmt.Errorf("%s: char: %w: want a quoted symbol", arg.Pos, ErrArgument)
		}
		if utf8.RuneCountInString(*arg.Symbol) != 1 {
			return nil, fmt.Errorf("%s: char: %w: %q is not a single character", arg.Pos, ErrArgument, *arg.Symbol)
		}
		return nfa.Char(*arg.Symbol), nil
	case "epsilon":
		if len(e.Args) != 0 {
			return nil, e.arityErr("0")
		}
		return nfa.Empty(), nil
	case "concat", "or":
		if len(e.Args) == 0 {
			return nil, e.arityErr("at least 1")
		}
		frags, err := e.evalArgs(ctx)
		if err != nil {
			return nil, err
		}
		if e.Name == "concat" {
			return nfa.ConcatAll(frags), nil
		}
		return nfa.OrAll(frags), nil
	case "rep", "star", "plus", "optional", "question":
		if len(e.Args) != 1 {
			return nil, e.arityErr("1")
		}
		frags, err := e.evalArgs(ctx)
		if err != nil {
			return nil, err
		}
		switch e.Name {
		case "plus":
			return nfa.PlusRep(frags[0]), nil
		case "optional", "question":
			return nfa.QuestionRep(frags[0]), nil
		}
		return nfa.Rep(frags[0]), nil
	}
	return nil, fmt.Errorf("%s: %w %s", e.Pos, ErrUnknownFunction, e.Name)
}

func (e *Expr) resolve(ctx *Context) (*nfa.Fragment, error) {
	b, ok := ctx.Env.Get(e.Name)
	if !ok {
		return nil, fmt.Errorf("%s: %w %s", e.Pos, ErrUndefined, e.Name)
	}
	if ctx.resolving[e.Name] {
		return nil, fmt.Errorf("%s: %w: %s", e.Pos, ErrCycle, e.Name)
	}
	if ctx.Logger != nil {
		ctx.Logger.Debug("expanding binding", "name", e.Name, "pos", e.Pos.String())
	}
	ctx.resolving[e.Name] = true
	defer delete(ctx.resolving, e.Name)
	return b.Expr.Eval(ctx)
}

func (e *Expr) evalArgs(ctx *Context) ([]*nfa.Fragment, error) {
	frags := make([]*nfa.Fragment, 0, len(e.Args))
	for _, arg := range e.Args {
		if arg.Expr == nil {
			return nil, fmt.Errorf("%s: %s: %w: symbols are only accepted by char", arg.Pos, e.Name, ErrArgument)
		}
		f, err := arg.Expr.Eval(ctx)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f)
	}
	return frags, nil
}

func (e *Expr) arityErr(want string) error {
	return fmt.Errorf("%s: %s: %w: want %s, got %d", e.Pos, e.Name, ErrArity, want, len(e.Args))
}
