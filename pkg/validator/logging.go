package validator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/validflow/pkg/logger"
)

// Logged wraps v so that each evaluation is logged under name.
// Outcomes are logged at debug level and faults at error level.
// The result and error pass through untouched. A nil log returns v as is.
func Logged[T any](log *slog.Logger, name string, v Validator[T]) Validator[T] {
	if log == nil {
		return v
	}

	return Func[T](func(ctx context.Context, payload T) (Result, error) {
		start := time.Now()
		res, err := v.Validate(ctx, payload)
		if err != nil {
			log.ErrorContext(ctx, "validator fault",
				logger.Validator(name),
				logger.Error(err),
				logger.Duration(time.Since(start)),
			)
			return res, err
		}

		log.DebugContext(ctx, "validator evaluated",
			logger.Validator(name),
			logger.Valid(res.Valid),
			logger.Messages(res.Messages),
			logger.Duration(time.Since(start)),
		)
		return res, nil
	})
}
