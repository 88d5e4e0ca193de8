// ABOUTME: CLI version command.
// ABOUTME: Version is set at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the lifedash version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lifedash %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
