package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/store"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.SetOut(os.Stdout)
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Pick a module, an attribute and a new value from prompts",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		m := mustMapper()

		modules, err := m.ListModules()
		handleErr(err)
		if len(modules) == 0 {
			handleErr(fmt.Errorf("no modules under %s", m.Root()))
		}

		module := viper.GetString(key.ModuleDefault)
		modulePrompt := &survey.Select{Message: "Module", Options: modules}
		if lo.Contains(modules, module) {
			modulePrompt.Default = module
		}
		handleErr(survey.AskOne(modulePrompt, &module))

		values, err := m.ModuleConfig(module)
		handleErr(err)

		writable := lo.Filter(values, func(v store.Value, _ int) bool {
			return v.Type.IsText() || v.Type.IsNumeric()
		})
		if len(writable) == 0 {
			handleErr(fmt.Errorf("module %s has no writable settings", module))
		}

		var attr string
		handleErr(survey.AskOne(&survey.Select{
			Message: "Attribute",
			Options: lo.Map(writable, func(v store.Value, _ int) string { return v.Name }),
			Description: func(name string, index int) string {
				mapped, err := m.MapData(writable[index])
				if err != nil {
					return fmt.Sprint(writable[index].Data)
				}
				return fmt.Sprint(mapped.Data)
			},
		}, &attr))

		current, _ := lo.Find(writable, func(v store.Value) bool { return v.Name == attr })
		mapped, err := m.MapData(current)
		handleErr(err)

		var value string
		if d, ok := m.Options(attr); ok {
			prompt := &survey.Select{Message: "Value", Options: d.Labels()}
			if label := fmt.Sprint(mapped.Data); d.Has(label) {
				prompt.Default = label
			}
			handleErr(survey.AskOne(prompt, &value))
		} else {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Value",
				Default: fmt.Sprint(mapped.Data),
			}, &value, survey.WithValidator(survey.Required)))
		}

		handleErr(m.SetValue(module, attr, value))
		cmd.Printf(
			"%s set %s to %s on %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(attr),
			style.Fg(color.Yellow)(value),
			module,
		)
	},
}
