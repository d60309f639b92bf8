package main

import (
	"os"

	"promotimer/internal/cli"
	"promotimer/internal/log"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		log.Error("promotimer failed", "error", err)
		os.Exit(1)
	}
}
