package userflow

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/validflow/pkg/payload"
	"github.com/dmitrymomot/validflow/pkg/validator"
)

const DefaultMinPasswordLength = 8

var digitRegex = regexp.MustCompile(`\d`)

// Credentials is the typed view the password checks work on.
// It holds only the password so other fields never affect this branch.
type Credentials struct {
	Password string `mapstructure:"password"`
}

// Option configures the user flow.
type Option func(*options)

type options struct {
	minPassword int
	log         *slog.Logger
}

// WithMinPasswordLength overrides DefaultMinPasswordLength. Non-positive values are ignored.
func WithMinPasswordLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minPassword = n
		}
	}
}

// WithLogger logs every branch of the flow through validator.Logged.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New assembles the user validation flow:
//
//	Composite(
//	    Sequence(email present, has "@", has no "$", well formed),
//	    Sequence(password present, min length, has a digit),
//	    username available in dir,
//	    id is a UUID when present,
//	)
//
// The returned validator is built once and safe for concurrent reuse.
func New(dir Directory, opts ...Option) validator.Validator[payload.Map] {
	if dir == nil {
		panic("userflow: nil Directory")
	}

	o := &options{minPassword: DefaultMinPasswordLength}
	for _, opt := range opts {
		opt(o)
	}

	logged := func(name string, v validator.Validator[payload.Map]) validator.Validator[payload.Map] {
		return validator.Logged(o.log, name, v)
	}

	return logged("user", validator.Composite(
		logged("email", Email()),
		logged("password", Password(o.minPassword)),
		logged("username", UsernameAvailable(dir)),
		logged("id", OptionalID()),
	))
}

// Email checks the "email" field, stopping at the first broken rule.
func Email() validator.Validator[payload.Map] {
	return validator.Sequence(
		EmailPresent(),
		EmailHasAtSign(),
		EmailHasNoDollarSign(),
		emailRule(func(email string) validator.Rule { return validator.ValidEmail("email", email) }),
	)
}

func EmailPresent() validator.Validator[payload.Map] {
	return emailRule(func(email string) validator.Rule { return validator.Required("email", email) })
}

func EmailHasAtSign() validator.Validator[payload.Map] {
	return emailRule(func(email string) validator.Rule { return validator.Contains("email", email, "@") })
}

// EmailHasNoDollarSign rejects addresses containing "$".
func EmailHasNoDollarSign() validator.Validator[payload.Map] {
	return emailRule(func(email string) validator.Rule { return validator.NotContains("email", email, "$") })
}

// emailRule reads "email" from the payload; a missing or non-string field reads as empty.
func emailRule(rule func(email string) validator.Rule) validator.Validator[payload.Map] {
	return validator.FromRules(func(m payload.Map) []validator.Rule {
		email, _ := m.String("email")
		return []validator.Rule{rule(email)}
	})
}

// Password decodes Credentials from the payload and checks the password in order.
// A payload whose password cannot be decoded is a fault.
func Password(minLen int) validator.Validator[payload.Map] {
	passwordRule := func(rule func(pw string) validator.Rule) validator.Validator[Credentials] {
		return validator.FromRules(func(c Credentials) []validator.Rule {
			return []validator.Rule{rule(c.Password)}
		})
	}

	return validator.Map(decodeCredentials, validator.Sequence(
		passwordRule(func(pw string) validator.Rule { return validator.Required("password", pw) }),
		passwordRule(func(pw string) validator.Rule { return validator.MinLen("password", pw, minLen) }),
		passwordRule(func(pw string) validator.Rule {
			return validator.Matches("password", pw, digitRegex, "containing at least one digit")
		}),
	))
}

func decodeCredentials(_ context.Context, m payload.Map) (Credentials, error) {
	return payload.Decode[Credentials](m)
}

// UsernameAvailable fails when "username" is missing or already taken in dir.
// Directory errors are faults, not validation failures.
func UsernameAvailable(dir Directory) validator.Validator[payload.Map] {
	return validator.Func[payload.Map](func(ctx context.Context, m payload.Map) (validator.Result, error) {
		username, _ := m.String("username")
		if res := validator.Apply(validator.Required("username", username)); !res.Valid {
			return res, nil
		}

		taken, err := dir.Taken(ctx, username)
		if err != nil {
			return validator.Result{}, fmt.Errorf("%w: %w", ErrDirectoryLookup, err)
		}
		if taken {
			return validator.Fail(fmt.Sprintf("username: %q is already taken", username)), nil
		}
		return validator.Pass(), nil
	})
}

// OptionalID passes when "id" is absent and otherwise requires a UUID string.
func OptionalID() validator.Validator[payload.Map] {
	return validator.FromRules(func(m payload.Map) []validator.Rule {
		if !m.Has("id") {
			return nil
		}
		id, _ := m.String("id")
		return []validator.Rule{validator.ValidUUID("id", id)}
	})
}
