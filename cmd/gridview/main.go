package main

import (
	"os"

	"github.com/taisazevedo9/gridview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
