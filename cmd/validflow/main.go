package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/validflow/pkg/config"
)

func main() {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "validflow: %v\n", err)
		os.Exit(exitFault)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "validflow: %v\n", err)
		os.Exit(exitFault)
	}
}
