// Package main provides the CLI entrypoint for structarray.
//
// structarray is a go:generate-style codegen tool that:
//   - Parses Go packages (AST + go/types) to find annotated records
//   - Validates that each record qualifies as a contiguous array of
//     one element type
//   - Generates zero-copy array/slice accessor and conversion code
package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"structarray/internal/cli"
)

func main() {
	log.SetFlags(0)
	cobra.CheckErr(cli.NewCLI().ExecuteContext(context.Background()))
}
