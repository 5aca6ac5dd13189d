// Package tt supports table-driven tests with little boilerplate.
//
// A typical use looks like:
//
//	tt.Test(t, shorten.Rel,
//		tt.Args([]string{"a"}, false).Rets("/a"),
//		tt.Args([]string{"a", "b"}, false).Rets("/../b"),
//	)
//
// Return values are compared with [cmp.Equal], treating nil and empty slices
// and maps as equal. On mismatch the diff is included in the error message.
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	name := funcName(fn)
	for _, test := range tests {
		rets := call(fn, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if len(retsMatcher) != len(rets) {
				t.Errorf("%s(%s) returns %d values, test wants %d",
					name, sprintCommaDelimited(test.args...), len(rets), len(retsMatcher))
				continue
			}
			if !match(retsMatcher, rets) {
				t.Errorf("%s(%s) -> %s, want %s%s",
					name, sprintCommaDelimited(test.args...),
					sprintRets(rets...), sprintRets(retsMatcher...),
					diff(retsMatcher, rets))
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorIs returns a Matcher that matches errors for which the given predicate
// returns true.
func ErrorIs(pred func(error) bool) Matcher { return errorMatcher{pred} }

type errorMatcher struct{ pred func(error) bool }

func (m errorMatcher) Match(v RetValue) bool {
	err, _ := v.(error)
	return err != nil && m.pred(err)
}

var cmpOpts = []cmp.Option{cmpopts.EquateEmpty()}

func match(matchers, actual []any) bool {
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, cmpOpts...)
}

func diff(matchers, actual []any) string {
	var sb strings.Builder
	for i, matcher := range matchers {
		if _, ok := matcher.(Matcher); ok {
			continue
		}
		if d := cmp.Diff(matcher, actual[i], cmpOpts...); d != "" {
			fmt.Fprintf(&sb, "\nreturn value %d (-want +got):\n%s", i, d)
		}
	}
	return sb.String()
}

func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "fn"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func sprintRets(rets ...any) string {
	if len(rets) == 1 {
		return fmt.Sprintf("%#v", rets[0])
	}
	return "(" + sprintCommaDelimited(rets...) + ")"
}

func sprintCommaDelimited(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns an invalid Value; use the zero
			// value of the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := fnValue.Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
