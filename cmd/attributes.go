package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/oxrcfg/oxrcfg/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(attributesCmd)
	attributesCmd.Flags().BoolP("json", "j", false, "Print attributes and their domains as JSON")
	attributesCmd.SetOut(os.Stdout)
}

var attributesCmd = &cobra.Command{
	Use:     "attributes",
	Aliases: []string{"attrs"},
	Short:   "List the attributes that accept labels and their options",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names := domain.Attributes()

		if lo.Must(cmd.Flags().GetBool("json")) {
			byName := lo.SliceToMap(names, func(name string) (string, *domain.Domain) {
				d, _ := domain.Lookup(name)
				return name, d
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(byName))
			return
		}

		width := util.Min(util.TerminalWidth(80), separatorWidth)
		for _, name := range names {
			d, _ := domain.Lookup(name)

			cmd.Printf("%s %s\n", style.Fg(color.Purple)(name), style.Faint(d.Name))
			labels := wordwrap.String(strings.Join(d.Labels(), ", "), width-4)
			cmd.Println(indent.String(style.Fg(color.Yellow)(labels), 4))
		}
	},
}
