package cmd

import (
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse modules and cycle setting labels in a terminal UI",
	Long: `Browse modules and their settings.
Left and right cycle the label of the selected setting and write it immediately.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(tui.Run(mustMapper(), &tui.Options{
			Module: viper.GetString(key.ModuleDefault),
		}))
	},
}
