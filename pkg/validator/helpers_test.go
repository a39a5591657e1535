package validator_test

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/validflow/pkg/validator"
)

// stub returns a fixed outcome and counts its invocations.
type stub struct {
	res   validator.Result
	err   error
	calls atomic.Int32
}

func (s *stub) Validate(_ context.Context, _ map[string]any) (validator.Result, error) {
	s.calls.Add(1)
	return s.res, s.err
}

func passing(msgs ...string) *stub { return &stub{res: validator.Pass(msgs...)} }

func failing(msgs ...string) *stub { return &stub{res: validator.Fail(msgs...)} }

func faulty(err error) *stub { return &stub{err: err} }

type payload = map[string]any
