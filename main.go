// Package main is the entry point for the vixstremio addon.
package main

import (
	"github.com/samber/lo"
	"github.com/vixstremio/vixstremio/cmd"
	"github.com/vixstremio/vixstremio/config"
	"github.com/vixstremio/vixstremio/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
