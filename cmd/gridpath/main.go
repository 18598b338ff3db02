// Package main is the entry point for the gridpath CLI.
package main

import "github.com/katalvlaran/gridpath/internal/cli"

func main() {
	cli.Execute()
}
