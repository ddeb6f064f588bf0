package dectree

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
)

// ExprCondition compiles an expr-lang expression into a Condition. The
// expression sees the context attributes as top-level variables, e.g.
//
//	credit_score >= 650 && debt_ratio < 0.5
//
// Compile errors are returned to the caller. Runtime errors (say, the
// expression touches an attribute the record doesn't carry) make the
// condition evaluate to false, logged at warn level, in line with the
// engine's degrade-don't-fail behavior.
func ExprCondition(code string) (Condition, error) {
	prog, err := expr.Compile(code,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling condition %q: %w", code, err)
	}
	return exprCondition(code, prog), nil
}

// MustExprCondition is ExprCondition for statically-known expressions,
// e.g. conditions wired into built-in trees. Panics on a compile error.
func MustExprCondition(code string) Condition {
	cond, err := ExprCondition(code)
	if err != nil {
		panic(err)
	}
	return cond
}

func exprCondition(code string, prog *vm.Program) Condition {
	return func(ctx Context) bool {
		out, err := expr.Run(prog, map[string]any(ctx))
		if err != nil {
			log.Warn().Err(err).Str("condition", code).Msg("condition evaluation failed")
			return false
		}
		ok, isBool := out.(bool)
		return isBool && ok
	}
}
