// Package main is the entry point for oxrcfg.
package main

import (
	"github.com/oxrcfg/oxrcfg/cmd"
	"github.com/oxrcfg/oxrcfg/config"
	"github.com/oxrcfg/oxrcfg/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
