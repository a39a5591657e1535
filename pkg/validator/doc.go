// Package validator provides composable, context-aware validators built from
// two combinators: Sequence and Composite.
//
// Every node in a validator tree satisfies the same Validator interface, so
// leaves and combinators nest freely. A tree is assembled once per validation
// flow and invoked once per payload; no state survives between invocations.
//
// # Architecture
//
// Core building blocks:
//   - Result           – {Valid, Messages} outcome, Messages never nil
//   - Validator[T]     – anything that validates a payload of type T
//   - Func[T]          – adapter for plain functions
//   - Sequence         – ordered, fail-fast chain
//   - Composite        – concurrent, all-run group aggregated in argument order
//   - Map              – validates a value projected from the payload
//   - Rule / Apply     – declarative leaf checks with translation metadata
//   - Logged           – slog decorator that never alters outcomes
//
// Composite fans out through async.Future and fans in with async.WaitAll.
// Sequence awaits one child at a time.
//
// # Usage
//
//	email := validator.Sequence(
//	    validator.FromRules(func(u User) []validator.Rule {
//	        return []validator.Rule{validator.Required("email", u.Email)}
//	    }),
//	    validator.FromRules(func(u User) []validator.Rule {
//	        return []validator.Rule{validator.ValidEmail("email", u.Email)}
//	    }),
//	)
//	user := validator.Composite(email, password, usernameAvailable)
//
//	res, err := user.Validate(ctx, u)
//	if err != nil {
//	    // fault: a check broke, not a validation failure
//	}
//	if !res.Valid {
//	    // res.Messages explains why
//	}
//
// # Error Handling
//
// Validation failures are values; faults are errors. Combinators return the
// first fault unchanged so errors.Is/As work against the original cause.
// A panicking child is recovered into *async.PanicError. Result.Err converts
// an invalid result into a *Failure wrapping ErrValidationFailed for callers
// that prefer error returns.
package validator
