package cli

// This file contains the list command for displaying the closed set of
// reduction strategies.

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sumbench/sumbench/reduce"
)

func (a *App) list(ctx *cli.Context) error {
	for _, kind := range reduce.Kinds() {
		fmt.Printf("%-28s %s\n", kind.String(), kind.Description())
	}
	return nil
}
