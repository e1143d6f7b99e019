package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-slidefix/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrPromptInterrupted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
