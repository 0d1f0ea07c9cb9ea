package main

import (
	"context"
	"fmt"
	"os"

	"week-tracker/internal/cli"
	"week-tracker/internal/errors"
	"week-tracker/internal/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		handler := cli.NewErrorHandler()
		if errors.ShouldLogError(err) {
			logging.Debugf("%s: %v\n", handler.GetErrorCode(err), err)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", handler.Message(err))
		os.Exit(handler.ExitCode(err))
	}
}
