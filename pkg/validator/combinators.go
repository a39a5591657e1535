package validator

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrymomot/validflow/pkg/async"
)

// Sequence runs validators in order and stops at the first invalid result.
//
// The result carries the messages of every validator that ran, in order,
// ending with the failing one. Validators after the failure are never invoked.
// With no validators the sequence always passes.
func Sequence[T any](validators ...Validator[T]) Validator[T] {
	return sequence[T]{validators: cloneValidators("Sequence", validators)}
}

type sequence[T any] struct {
	validators []Validator[T]
}

func (s sequence[T]) Validate(ctx context.Context, payload T) (Result, error) {
	// Allocated per call: a compiled sequence is reused across payloads
	messages := make([]string, 0)

	for _, v := range s.validators {
		res, err := async.Recover(func() (Result, error) {
			return v.Validate(ctx, payload)
		})
		if err != nil {
			return Result{}, err
		}

		messages = append(messages, res.Messages...)
		if !res.Valid {
			return Result{Valid: false, Messages: messages}, nil
		}
	}

	return Result{Valid: true, Messages: messages}, nil
}

// Composite runs every validator concurrently and aggregates all outcomes.
//
// The result is valid only if every validator passed. Messages are concatenated
// in argument order, not completion order, and include those of failing
// validators. A fault from any validator is returned as soon as it occurs and
// the context handed to its siblings is canceled. With no validators the
// composite always passes.
func Composite[T any](validators ...Validator[T]) Validator[T] {
	return composite[T]{validators: cloneValidators("Composite", validators)}
}

type composite[T any] struct {
	validators []Validator[T]
}

func (c composite[T]) Validate(ctx context.Context, payload T) (Result, error) {
	if len(c.validators) == 0 {
		return Pass(), nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	futures := make([]*async.Future[Result], len(c.validators))
	for i, v := range c.validators {
		futures[i] = async.Async(ctx, payload, v.Validate)
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		return Result{}, err
	}

	out := Pass()
	for _, res := range results {
		out.Valid = out.Valid && res.Valid
		out.Messages = append(out.Messages, res.Messages...)
	}

	return out, nil
}

// Map validates a value derived from the payload, such as a nested field or a
// decoded struct. A projection error is a fault wrapping ErrProjection.
func Map[T, U any](project func(context.Context, T) (U, error), v Validator[U]) Validator[T] {
	if project == nil || v == nil {
		panic("validator: Map requires a projection and a validator")
	}

	return Func[T](func(ctx context.Context, payload T) (Result, error) {
		nested, err := project(ctx, payload)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrProjection, err)
		}
		return v.Validate(ctx, nested)
	})
}

// cloneValidators copies the caller's slice so later mutation cannot change a
// compiled tree. Nil children are a wiring mistake and panic at build time.
func cloneValidators[T any](kind string, validators []Validator[T]) []Validator[T] {
	for i, v := range validators {
		if v == nil {
			panic(fmt.Sprintf("validator: %s got nil validator at position %d", kind, i))
		}
	}
	return slices.Clone(validators)
}
