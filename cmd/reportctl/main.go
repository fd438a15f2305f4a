package main

import (
	"os"

	"github.com/SscSPs/hisaabi_reports/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
