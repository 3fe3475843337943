package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvaldez/deep-research-mcp/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deep-research-mcp v%s\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
