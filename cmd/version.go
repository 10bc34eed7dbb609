package cmd

import (
	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show termfolio version number.",
	Long:  "Show termfolio version number.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("%s\n", common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
