package dectree

import (
	"strconv"
	"strings"
)

// Outcome is a terminal node: it always evaluates to its configured value.
type Outcome struct {
	value  Result
	action Action
}

// NewOutcome builds a terminal node. The action may be nil, in which case
// reaching the outcome has no side effect.
func NewOutcome(value Result, action Action) *Outcome {
	return &Outcome{value: value, action: action}
}

func (o *Outcome) Evaluate(ctx Context) Result {
	if o.action != nil {
		o.action(ctx)
	}
	return o.value
}

func (o *Outcome) Type() string {
	return "OutcomeNode"
}

func (o *Outcome) Render(indent int) string {
	var b strings.Builder
	b.WriteString(pad(indent) + "{\n")
	b.WriteString(pad(indent+2) + "\"type\": \"outcome\",\n")
	b.WriteString(pad(indent+2) + "\"value\": \"" + o.value.String() + "\",\n")
	b.WriteString(pad(indent+2) + "\"hasAction\": " + strconv.FormatBool(o.action != nil) + "\n")
	b.WriteString(pad(indent) + "}")
	return b.String()
}
