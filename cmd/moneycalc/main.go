package main

import (
	"fmt"
	"os"

	"github.com/exactmoney/money/internal/cli"
)

func main() {
	if err := cli.Main().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "moneycalc:", err)
		os.Exit(1)
	}
}
