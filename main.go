package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cottand/reify/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "reify [subcommand]",
	Short:        "reify\n a reified generics engine for dynamic object systems",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.ShowCmd)
}
