package main

import (
	"os"

	"passwordCheckerBackend/internal/adapter/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
