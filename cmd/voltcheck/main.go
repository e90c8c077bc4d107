package main

import (
	"os"

	"github.com/voltcheck/voltcheck/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
