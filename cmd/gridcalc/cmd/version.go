package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the gridcalc CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridcalc version %s\n", version)
		fmt.Println("A martingale grid risk calculator for leveraged instruments")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
