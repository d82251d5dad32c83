// Package main provides the CLI entrypoint for nullable-generator.
//
// nullable-generator is a go:generate tool that:
//   - Parses Go packages (AST + go/types) to find structs marked with //nullablegen:generate
//   - Emits a Nullable<Name> companion whose fields can each be absent
//   - Adds Get, Lookup and Set accessors plus present and zero-value constructors
package main

import (
	"os"

	"nullable-generator/internal/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
