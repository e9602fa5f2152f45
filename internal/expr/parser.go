package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a list of bindings followed by the expression that is built.
type Script struct {
	Bindings []*Binding `parser:"@@*"`
	Body     *Expr      `parser:"@@"`
}

type Binding struct {
	Pos  lexer.Position
	Name string `parser:"'let' @Ident '='"`
	Expr *Expr  `parser:"@@ ';'"`
}

// Expr is either a combinator call, name(args...), or a reference to a binding.
type Expr struct {
	Pos  lexer.Position
	Name string `parser:"@Ident"`
	Call bool   `parser:"( @'('"`
	Args []*Arg `parser:"  ( @@ ( ',' @@ )* )? ')' )?"`
}

type Arg struct {
	Pos    lexer.Position
	Symbol *string `parser:"  @(String | Char)"`
	Expr   *Expr   `parser:"| @@"`
}

var parser = participle.MustBuild[Script](
	participle.Unquote("String", "Char"),
)

func Parse(data string) (*Script, error) {
	return parser.ParseString("expr", data)
}
