package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

var version = "devel"

func main() {
	cli := parseArgs(os.Args[1:])
	cli.applyLogging()

	cfg := LoadConfigOrDefault()

	switch cli.mode {
	case listMode:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		checkf(runList(ctx, cli.List, cfg, os.Stdout, os.Stderr), "failed to catalog roms")

	case romInfosMode:
		checkf(runRomInfos(cli.RomInfos.RomPath, os.Stdout), "failed to show rom infos")

	case configMode:
		if cli.Config.Save {
			path, err := SaveConfig(cfg)
			checkf(err, "failed to save configuration")
			fmt.Println("Configuration saved to", path)
			return
		}
		checkf(printConfig(os.Stdout, cfg), "failed to print configuration")

	case versionMode:
		fmt.Println("gbcat", version)
	}
}
