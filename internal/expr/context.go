package expr

import "log/slog"

// Context carries the bindings and the names being resolved, which catches
// a binding that refers to itself.
type Context struct {
	Env    *Environment
	Logger *slog.Logger

	resolving map[string]bool
}

func NewContext(env *Environment, logger *slog.Logger) *Context {
	return &Context{Env: env, Logger: logger, resolving: map[string]bool{}}
}
