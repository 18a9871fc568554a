package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/oxrcfg/oxrcfg/util"
	"github.com/oxrcfg/oxrcfg/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"logs directory", "logs", mo.Some("l"), where.Logs},
	{"store file", "store", mo.Some("s"), func() string { return viper.GetString(key.StoreFile) }},
	{"exports directory", "exports", mo.Some("e"), where.Exports},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		clearCmd.Flags().BoolP(target.argLong, target.argShort.OrEmpty(), false, help)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove logs, exports or the file store document",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			if err := util.Delete(target.location()); !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			cmd.Printf("%s %s cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
