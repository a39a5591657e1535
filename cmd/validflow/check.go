package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validflow/pkg/logger"
	"github.com/dmitrymomot/validflow/pkg/payload"
	"github.com/dmitrymomot/validflow/pkg/userflow"
	"github.com/dmitrymomot/validflow/pkg/validator"
)

const stdinSource = "-"

// report is one output line per payload. Error is set only for faults.
type report struct {
	Source   string   `json:"source"`
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
	Error    string   `json:"error,omitempty"`
}

func newCheckCmd(cfg cliConfig) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate payload files against the user flow",
		Long: `Reads each payload (JSON or YAML, chosen by extension) and prints one JSON line per payload.
Use "-" or no arguments to read a single payload from stdin.
Exits 1 when any payload is invalid and 2 when any payload could not be checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			stdinFormat, err := payload.ParseFormat(format)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{stdinSource}
			}

			dir := userflow.NewStaticDirectory(cfg.LookupLatency, cfg.TakenUsernames...)
			flow := userflow.New(dir,
				userflow.WithMinPasswordLength(cfg.MinPassword),
				userflow.WithLogger(log),
			)

			c := &checker{
				flow:    flow,
				log:     log,
				timeout: cfg.Timeout,
				read: func(source string) (payload.Map, error) {
					if source == stdinSource {
						return payload.Read(cmd.InOrStdin(), stdinFormat)
					}
					return payload.ReadFile(source)
				},
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			code := 0
			for _, source := range args {
				rep := c.check(cmd.Context(), source)
				if err := enc.Encode(rep); err != nil {
					return err
				}

				switch {
				case rep.Error != "":
					code = exitFault
				case !rep.Valid && code == 0:
					code = exitInvalid
				}
			}

			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(payload.FormatJSON), "stdin payload format (json|yaml)")
	return cmd
}

type checker struct {
	flow    validator.Validator[payload.Map]
	log     *slog.Logger
	timeout time.Duration
	read    func(source string) (payload.Map, error)
}

func (c *checker) check(ctx context.Context, source string) report {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, sourceKey{}, source)

	m, err := c.read(source)
	if err != nil {
		c.log.ErrorContext(ctx, "payload unreadable", logger.Error(err))
		return report{Source: source, Messages: []string{}, Error: err.Error()}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.flow.Validate(ctx, m)
	if err != nil {
		return report{Source: source, Messages: []string{}, Error: err.Error()}
	}

	c.log.InfoContext(ctx, "payload checked", logger.Valid(res.Valid), logger.Messages(res.Messages))
	return report{Source: source, Valid: res.Valid, Messages: res.Messages}
}
