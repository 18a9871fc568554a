package cmd

import (
	"os"

	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/store"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("from", constant.BackendRegistry, "Backend to copy the settings from")
	lo.Must0(snapshotCmd.RegisterFlagCompletionFunc("from", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return store.Backends(), cobra.ShellCompDirectiveNoFileComp
	}))
	snapshotCmd.Flags().StringP("output", "o", "", "Document to write (defaults to store.file)")
	lo.Must0(snapshotCmd.MarkFlagFilename("output", "json"))
	snapshotCmd.SetOut(os.Stdout)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Copy every module into a document usable by the file backend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			from   = lo.Must(cmd.Flags().GetString("from"))
			output = lo.Must(cmd.Flags().GetString("output"))
			root   = viper.GetString(key.StoreRoot)
		)

		if output == "" {
			output = viper.GetString(key.StoreFile)
		}

		src, err := store.New(from, output)
		handleErr(err)

		snapshot, err := store.Snapshot(src, root)
		handleErr(err)

		handleErr(store.NewFile(output).Import(snapshot))
		cmd.Printf(
			"%s copied %s from %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(root),
			style.Fg(color.Yellow)(from),
			output,
		)
	},
}
