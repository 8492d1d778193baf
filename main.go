package main

import (
	"os"

	"github.com/nlspoon/sqlstyle.guide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
