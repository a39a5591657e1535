package userflow_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validflow/pkg/logger"
	"github.com/dmitrymomot/validflow/pkg/payload"
	"github.com/dmitrymomot/validflow/pkg/userflow"
	"github.com/dmitrymomot/validflow/pkg/validator"
)

type brokenDirectory struct{ err error }

func (d brokenDirectory) Taken(context.Context, string) (bool, error) { return false, d.err }

func validUser() payload.Map {
	return payload.Map{
		"email":    "alice@example.com",
		"password": "correct horse 9",
		"username": "alice",
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name  string
		email any
		want  validator.Result
	}{
		{"valid address", "alice@example.com", validator.Pass()},
		{"missing field fails closed", nil, validator.Fail("email: field is required")},
		{"non-string reads as empty", 42, validator.Fail("email: field is required")},
		{"no at sign stops the chain", "alice.example.com", validator.Fail(`email: must contain "@"`)},
		{"dollar sign fails", "al$ce@example.com", validator.Fail(`email: must not contain "$"`)},
		{"malformed address", "alice@localhost", validator.Fail("email: must be a valid email address")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := payload.Map{}
			if tt.email != nil {
				m["email"] = tt.email
			}
			res, err := userflow.Email().Validate(ctx, m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := userflow.Password(8)

	t.Run("valid password", func(t *testing.T) {
		res, err := v.Validate(ctx, payload.Map{"password": "abcdefg1"})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("numeric yaml value is converted", func(t *testing.T) {
		res, err := v.Validate(ctx, payload.Map{"password": 123456789})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("reports only the first broken rule", func(t *testing.T) {
		res, err := v.Validate(ctx, payload.Map{"password": "abc"})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail("password: must be at least 8 characters long"), res)
	})

	t.Run("missing digit", func(t *testing.T) {
		res, err := v.Validate(ctx, payload.Map{"password": "abcdefgh"})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail("password: must be containing at least one digit"), res)
	})

	t.Run("missing password", func(t *testing.T) {
		res, err := v.Validate(ctx, payload.Map{})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail("password: field is required"), res)
	})

	t.Run("malformed email does not affect the password branch", func(t *testing.T) {
		res, err := v.Validate(ctx, payload.Map{
			"email":    map[string]any{"addr": "a@b.co"},
			"password": "abcdefg1",
		})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("undecodable password is a fault", func(t *testing.T) {
		_, err := v.Validate(ctx, payload.Map{"password": []any{"a"}})
		assert.ErrorIs(t, err, validator.ErrProjection)
		assert.ErrorIs(t, err, payload.ErrDecode)
	})
}

func TestUsernameAvailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := userflow.NewStaticDirectory(0, "Admin", " ")

	t.Run("free username", func(t *testing.T) {
		res, err := userflow.UsernameAvailable(dir).Validate(ctx, payload.Map{"username": "alice"})
		require.NoError(t, err)
		assert.Equal(t, validator.Pass(), res)
	})

	t.Run("taken username is case-insensitive", func(t *testing.T) {
		res, err := userflow.UsernameAvailable(dir).Validate(ctx, payload.Map{"username": "admin"})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail(`username: "admin" is already taken`), res)
	})

	t.Run("missing username", func(t *testing.T) {
		res, err := userflow.UsernameAvailable(dir).Validate(ctx, payload.Map{})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail("username: field is required"), res)
	})

	t.Run("directory failure is a fault", func(t *testing.T) {
		down := errors.New("directory down")
		_, err := userflow.UsernameAvailable(brokenDirectory{err: down}).Validate(ctx, payload.Map{"username": "x"})
		assert.ErrorIs(t, err, userflow.ErrDirectoryLookup)
		assert.ErrorIs(t, err, down)
	})

	t.Run("slow lookup honors context", func(t *testing.T) {
		slow := userflow.NewStaticDirectory(time.Hour)
		ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := userflow.UsernameAvailable(slow).Validate(ctx, payload.Map{"username": "x"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestOptionalID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res, err := userflow.OptionalID().Validate(ctx, payload.Map{})
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = userflow.OptionalID().Validate(ctx, payload.Map{"id": "123e4567-e89b-12d3-a456-426614174000"})
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = userflow.OptionalID().Validate(ctx, payload.Map{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, validator.Fail("id: must be a valid UUID"), res)
}

func TestNew(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid user", func(t *testing.T) {
		flow := userflow.New(userflow.NewStaticDirectory(0, "admin"))
		res, err := flow.Validate(ctx, validUser())
		require.NoError(t, err)
		assert.Equal(t, validator.Pass(), res)
	})

	t.Run("reports every field in flow order", func(t *testing.T) {
		flow := userflow.New(userflow.NewStaticDirectory(0, "admin"))
		res, err := flow.Validate(ctx, payload.Map{
			"email":    "admin$@example.com",
			"password": "short",
			"username": "admin",
			"id":       "nope",
		})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail(
			`email: must not contain "$"`,
			"password: must be at least 8 characters long",
			`username: "admin" is already taken`,
			"id: must be a valid UUID",
		), res)
	})

	t.Run("reused flow does not leak between payloads", func(t *testing.T) {
		flow := userflow.New(userflow.NewStaticDirectory(0))
		bad := payload.Map{"email": "x", "password": "abcdefg1", "username": "bob"}

		first, err := flow.Validate(ctx, bad)
		require.NoError(t, err)
		second, err := flow.Validate(ctx, bad)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		good, err := flow.Validate(ctx, validUser())
		require.NoError(t, err)
		assert.True(t, good.Valid)
		assert.Empty(t, good.Messages)
	})

	t.Run("malformed email fails closed without a fault", func(t *testing.T) {
		flow := userflow.New(userflow.NewStaticDirectory(0))
		res, err := flow.Validate(ctx, payload.Map{
			"email":    map[string]any{"addr": "a@b.co"},
			"password": "abcdefg1",
			"username": "zed",
		})
		require.NoError(t, err)
		assert.Equal(t, validator.Fail("email: field is required"), res)
	})

	t.Run("min password option", func(t *testing.T) {
		flow := userflow.New(userflow.NewStaticDirectory(0), userflow.WithMinPasswordLength(20))
		res, err := flow.Validate(ctx, validUser())
		require.NoError(t, err)
		assert.Equal(t, validator.Fail("password: must be at least 20 characters long"), res)
	})

	t.Run("directory fault surfaces from the flow", func(t *testing.T) {
		down := errors.New("directory down")
		flow := userflow.New(brokenDirectory{err: down})
		_, err := flow.Validate(ctx, validUser())
		assert.ErrorIs(t, err, down)
	})

	t.Run("logs each branch", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		flow := userflow.New(userflow.NewStaticDirectory(0), userflow.WithLogger(log))

		_, err := flow.Validate(ctx, validUser())
		require.NoError(t, err)
		for _, name := range []string{"email", "password", "username", "id", "user"} {
			assert.Contains(t, buf.String(), `"validator":"`+name+`"`)
		}
	})

	t.Run("nil directory panics", func(t *testing.T) {
		assert.Panics(t, func() { userflow.New(nil) })
	})
}
