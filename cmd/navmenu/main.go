package main

import (
	"os"

	"github.com/mchmarny/navmenu/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
