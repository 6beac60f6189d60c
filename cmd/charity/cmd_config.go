package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initForce bool

// initCmd writes the effective configuration to the config path
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Long: `Writes the defaults, merged with any environment overrides, to the file
named by --config so they can be edited by hand.

Example:
  charity init
  charity init --config /etc/charity/charity.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}
