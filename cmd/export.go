package cmd

import (
	"os"
	"path/filepath"

	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/mapper"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/oxrcfg/oxrcfg/util"
	"github.com/oxrcfg/oxrcfg/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolP("all", "a", false, "Export every module instead of the selected one")
	exportCmd.Flags().StringP("dir", "d", "", "Directory to write into (defaults to the exports directory)")
	lo.Must0(exportCmd.MarkFlagDirname("dir"))
	exportCmd.SetOut(os.Stdout)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save module settings as JSON files that --file can apply",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		m := mustMapper()

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Exports()
		}

		modules := []string{viper.GetString(key.ModuleDefault)}
		if lo.Must(cmd.Flags().GetBool("all")) {
			var err error
			modules, err = m.ListModules()
			handleErr(err)
		}

		for _, module := range modules {
			cfg, err := m.Export(module)
			handleErr(moduleErr(m, module, err))

			path := filepath.Join(dir, util.SanitizeFilename(module)+".json")
			handleErr(mapper.SaveConfig(path, cfg))

			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				style.Fg(color.Purple)(module),
				style.Faint(path),
			)
		}
	},
}
