package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/oxrcfg/oxrcfg/color"
	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/oxrcfg/oxrcfg/icon"
	"github.com/oxrcfg/oxrcfg/key"
	"github.com/oxrcfg/oxrcfg/log"
	"github.com/oxrcfg/oxrcfg/mapper"
	"github.com/oxrcfg/oxrcfg/store"
	"github.com/oxrcfg/oxrcfg/style"
	"github.com/oxrcfg/oxrcfg/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const separatorWidth = 120

// newMapper builds a mapper over the configured store backend.
func newMapper() (*mapper.Mapper, error) {
	backend := viper.GetString(key.StoreBackend)

	st, err := store.New(backend, viper.GetString(key.StoreFile))
	if err != nil {
		return nil, err
	}

	log.WithField("backend", backend).Debug("store ready")

	m := mapper.New(st, viper.GetString(key.StoreRoot))
	m.Strict = viper.GetBool(key.MapperStrict)
	return m, nil
}

func mustMapper() *mapper.Mapper {
	m, err := newMapper()
	handleErr(err)
	return m
}

// suggestModule finds the configured module closest to module, if any.
func suggestModule(m *mapper.Mapper, module string) mo.Option[string] {
	modules, err := m.ListModules()
	if err != nil || len(modules) == 0 {
		return mo.None[string]()
	}

	ranks := fuzzy.RankFindFold(module, modules)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(ranks[0].Target)
	}

	return mo.Some(closest(module, modules))
}

// moduleErr adds a did-you-mean hint when err is caused by a missing module.
func moduleErr(m *mapper.Mapper, module string, err error) error {
	if !errors.Is(err, store.ErrNotExist) {
		return err
	}

	if suggestion, ok := suggestModule(m, module).Get(); ok && suggestion != module {
		return fmt.Errorf("%w\ndid you mean %s?", err, style.Fg(color.Yellow)(suggestion))
	}
	return err
}

func errUnknownAttr(attr string) error {
	return fmt.Errorf(
		"Attr: %s has no available options, did you mean %s?",
		style.Fg(color.Red)(attr),
		style.Fg(color.Yellow)(closest(strings.ToLower(attr), domain.Attributes())),
	)
}

func runList(cmd *cobra.Command) {
	modules, err := mustMapper().ListModules()
	handleErr(err)

	cmd.Println("Available modules")
	for _, module := range modules {
		cmd.Printf(" - %s\n", module)
	}
}

func runGetConfig(cmd *cobra.Command, module, file string, asJSON bool) {
	m := mustMapper()

	values, err := m.ModuleConfig(module)
	handleErr(moduleErr(m, module, err))

	mapped := make(map[string]any, len(values))
	rows := make([]store.Value, 0, len(values))
	for _, v := range values {
		v, err = m.MapData(v)
		handleErr(err)

		mapped[v.Name] = v.Data
		rows = append(rows, v)
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(mapped))
	} else {
		separator := strings.Repeat("-", separatorWidth)

		cmd.Println(separator)
		cmd.Printf("Module: %s\n", module)
		cmd.Printf("%-25s %s\n", "Key", "Value")
		cmd.Println(separator)
		for _, v := range rows {
			cmd.Printf("%-25s %v\n", v.Name, v.Data)
		}
	}

	if file != "" {
		handleErr(mapper.SaveConfig(file, mapped))
		log.Infof("saved %s to %s", module, file)
	}
}

func runGet(cmd *cobra.Command, attr string) {
	d, ok := domain.Lookup(attr)
	if !ok {
		handleErr(errUnknownAttr(attr))
	}

	cmd.Printf("Available options for %s: %s\n", attr, strings.Join(d.Labels(), ", "))
}

func runSet(module, attr, value string) {
	m := mustMapper()
	handleErr(moduleErr(m, module, m.SetValue(module, attr, value)))
}

func runApply(cmd *cobra.Command, module, file string) {
	m := mustMapper()

	values, err := mapper.ReadFromFile(file)
	handleErr(err)

	report := m.Apply(module, values)

	failed := lo.Keys(report.Failed)
	sort.Strings(failed)
	for _, attr := range failed {
		cmd.PrintErrf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), moduleErr(m, module, report.Failed[attr]))
	}

	summary := fmt.Sprintf("applied %s to %s", util.Quantify(len(report.Applied), "setting", "settings"), module)
	if len(failed) > 0 {
		summary += fmt.Sprintf(", %d failed", len(failed))
		cmd.Printf("%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), summary)
		return
	}

	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), summary)
}
