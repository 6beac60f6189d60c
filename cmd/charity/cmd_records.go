package main

import (
	"context"

	"github.com/charityfund/charity/internal/console"
	"github.com/charityfund/charity/internal/store"
	"github.com/spf13/cobra"
)

// listCmd prints one collection and exits
var listCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List donors, donations, projects, volunteers or volunteer-projects",
	Long: `Prints every record of one kind with its related records, in the same
format as the interactive menu.

Example:
  charity list donors
  charity list volunteer-projects`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

// sumCmd prints the donation total
var sumCmd = &cobra.Command{
	Use:   "sum",
	Short: "Print the total of all donations",
	Args:  cobra.NoArgs,
	RunE:  runSum,
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := store.ParseKind(args[0])
	if err != nil {
		return err
	}

	return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
		return c.List(ctx, kind)
	})
}

func runSum(cmd *cobra.Command, args []string) error {
	return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
		return c.Sum(ctx)
	})
}
