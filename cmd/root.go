// Package cmd implements the command-line interface for oxrcfg.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/log"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionAttributes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return domain.Attributes(), cobra.ShellCompDirectiveNoFileComp
}

func completionModules(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	m, err := newMapper()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	modules, err := m.ListModules()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return modules, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.PersistentFlags().CountP("verbose", "v", "Show data about processing (repeat for more)")

	rootCmd.PersistentFlags().StringP("module", "m", constant.DefaultModule, "Select the module to work on")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("module", completionModules))
	lo.Must0(viper.BindPFlag(key.ModuleDefault, rootCmd.PersistentFlags().Lookup("module")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("list", "l", false, "List configured modules")
	rootCmd.Flags().BoolP("get-config", "c", false, "Get the configuration for the module")
	rootCmd.Flags().Bool("json", false, "With --get-config, print the configuration as JSON")
	rootCmd.Flags().StringP("file", "f", "", "Read or write the configuration from a JSON file")
	lo.Must0(rootCmd.MarkFlagFilename("file", "json"))

	rootCmd.Flags().StringP("get", "g", "", "Get available values for this attribute")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("get", completionAttributes))

	rootCmd.Flags().StringP("set", "s", "", "Attribute to set, followed by its value")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("set", completionAttributes))

	rootCmd.SetOut(os.Stdout)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.Verbose(lo.Must(cmd.Flags().GetCount("verbose")))
	}
}

// rootCmd reproduces the single-command interface: the flags select what to do.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [-v] [-m MODULE] [-l | -c [-f FILE] | -g ATTR | -s ATTR VALUE | -f FILE]",
	Short: "Read and write OpenXR Toolkit settings without starting the toolkit",
	Long: constant.AsciiArtLogo + "\n\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Read and write OpenXR Toolkit settings without starting the toolkit"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		var (
			module    = viper.GetString(key.ModuleDefault)
			file      = lo.Must(cmd.Flags().GetString("file"))
			attrToGet = lo.Must(cmd.Flags().GetString("get"))
			attrToSet = lo.Must(cmd.Flags().GetString("set"))
		)

		if attrToSet == "" && len(args) > 0 {
			handleErr(fmt.Errorf("unexpected argument %q, values are only accepted after --set ATTR", args[0]))
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("list")):
			runList(cmd)
		case lo.Must(cmd.Flags().GetBool("get-config")):
			runGetConfig(cmd, module, file, lo.Must(cmd.Flags().GetBool("json")))
		case attrToGet != "":
			runGet(cmd, attrToGet)
		case attrToSet != "":
			if len(args) != 1 {
				handleErr(errors.New("--set needs an attribute and a value: -s ATTR VALUE"))
			}
			runSet(module, attrToSet, args[0])
		case file != "":
			runApply(cmd, module, file)
		default:
			handleErr(cmd.Help())
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
