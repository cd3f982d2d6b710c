// Package rules evaluates generation rules. A rule is a small Lisp
// program, run by zygomys in a sandbox, that reads shape attributes and
// emits modeling operations, report values, prints and errors for one
// initial shape.
package rules

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
)

// RuleError is a non-fatal error in user rule code, such as a parse error
// or a failing builtin.
type RuleError struct {
	Line    int
	Col     int
	Message string
}

func (e RuleError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// OpKind identifies a modeling operation.
type OpKind int

const (
	OpExtrude OpKind = iota
	OpBox
	OpTranslate
)

func (k OpKind) String() string {
	switch k {
	case OpExtrude:
		return "extrude"
	case OpBox:
		return "box"
	case OpTranslate:
		return "translate"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one modeling step. Extrude uses Z as the height; Box uses X,Y,Z
// as its size; Translate uses X,Y,Z as the offset.
type Op struct {
	Kind    OpKind
	X, Y, Z float64
}

// Program is everything a rule produced for one shape.
type Program struct {
	Ops        []Op
	Report     map[string]any
	Prints     []string
	Errors     []string
	Attributes map[string]any // attribute values the rule read, after defaults
}

func newProgram() *Program {
	return &Program{
		Report:     make(map[string]any),
		Attributes: make(map[string]any),
	}
}

// Evaluator runs rule source. It is safe for concurrent use; every call
// to Evaluate gets a fresh sandbox.
type Evaluator struct {
	timeout time.Duration
}

// NewEvaluator returns an Evaluator with the given per-call timeout.
// Non-positive values use DefaultTimeout.
func NewEvaluator(timeout time.Duration) *Evaluator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Evaluator{timeout: timeout}
}

// Evaluate runs source against one shape's attributes. Errors in user code
// come back as RuleErrors; a timeout, panic or cancelled ctx is returned as
// the error.
func (e *Evaluator) Evaluate(ctx context.Context, source string, attrs map[string]any) (*Program, []RuleError, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during rule evaluation: %v", r)}
			}
		}()

		p, ruleErrs, err := evaluate(source, attrs)
		ch <- evalResult{program: p, errors: ruleErrs, err: err}
	}()

	return waitWithTimeout(ctx, ch, e.timeout)
}

func evaluate(source string, attrs map[string]any) (*Program, []RuleError, error) {
	p := newProgram()
	if strings.TrimSpace(source) == "" {
		return p, nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, p, attrs)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseLispError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseLispError(err), nil
	}
	return p, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// parseLispError converts a zygomys error into RuleError values, pulling
// out the line number when the message carries one.
func parseLispError(err error) []RuleError {
	msg := err.Error()
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []RuleError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []RuleError{{Message: strings.TrimSpace(msg)}}
}
