package validator

import (
	"context"
	"strings"
)

// Result is the outcome of one evaluation.
// Messages is never nil; use Pass and Fail to build results.
type Result struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

// Pass returns a valid result carrying msgs.
func Pass(msgs ...string) Result {
	return Result{Valid: true, Messages: appendMessages(nil, msgs)}
}

// Fail returns an invalid result carrying msgs.
func Fail(msgs ...string) Result {
	return Result{Valid: false, Messages: appendMessages(nil, msgs)}
}

// Err returns nil for a valid result and a *Failure otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &Failure{Messages: appendMessages(nil, r.Messages)}
}

func appendMessages(dst, msgs []string) []string {
	if dst == nil {
		dst = make([]string, 0, len(msgs))
	}
	return append(dst, msgs...)
}

// Validator checks a payload of type T.
//
// A negative outcome is reported as a Result with Valid set to false and a nil error.
// The error return is reserved for faults: a broken check or a failed outside
// computation. Combinators propagate faults unchanged and never turn them into results.
type Validator[T any] interface {
	Validate(ctx context.Context, payload T) (Result, error)
}

// Func adapts an ordinary function to the Validator interface.
type Func[T any] func(ctx context.Context, payload T) (Result, error)

// Validate calls f.
func (f Func[T]) Validate(ctx context.Context, payload T) (Result, error) {
	return f(ctx, payload)
}

// Assert builds a leaf validator from a predicate.
// A false predicate fails with onFail; a true one passes with no messages.
func Assert[T any](check func(T) bool, onFail string) Validator[T] {
	return Func[T](func(_ context.Context, payload T) (Result, error) {
		if check(payload) {
			return Pass(), nil
		}
		return Fail(onFail), nil
	})
}

// ValidationError describes a single failed rule with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// String renders the error as "field: message", or just the message without a field.
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and collects the failures into one result.
func Apply(rules ...Rule) Result {
	res := Pass()
	for _, rule := range rules {
		if !rule.Check() {
			res.Valid = false
			res.Messages = append(res.Messages, rule.Error.String())
		}
	}
	return res
}

// FromRules builds a leaf validator that derives its rules from each payload.
func FromRules[T any](build func(T) []Rule) Validator[T] {
	return Func[T](func(_ context.Context, payload T) (Result, error) {
		return Apply(build(payload)...), nil
	})
}

// Failure is the error form of an invalid Result.
type Failure struct {
	Messages []string
}

func (f *Failure) Error() string {
	if len(f.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(f.Messages, "; ")
}

func (f *Failure) Unwrap() error {
	return ErrValidationFailed
}
