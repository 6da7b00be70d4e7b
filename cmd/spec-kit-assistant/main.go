package main

import (
	"os"

	"github.com/manateeit/spec-kit-assistant/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
