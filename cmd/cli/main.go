package main

import (
	"fmt"
	"os"

	"github.com/me/workdeck/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "workdeck:", err)
		return 1
	}
	return 0
}
