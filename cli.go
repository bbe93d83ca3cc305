package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"gbcat/log"
)

type mode byte

const (
	listMode     mode = iota // Catalog a ROM directory
	romInfosMode             // Show ROM infos
	configMode               // Show or save configuration
	versionMode              // Show gbcat version
)

type (
	CLI struct {
		List     List      `cmd:"" help:"Catalog the ROMs of a directory and write a report. (default command)" default:"withargs"`
		RomInfos RomInfos  `cmd:"" help:"Show ROM header infos." name:"rom-infos"`
		Config   ConfigCmd `cmd:"" help:"Show the effective configuration."`
		Version  Version   `cmd:"" help:"Show gbcat version."`

		Log     logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		Verbose bool       `short:"v" help:"Print details during the process."`

		mode mode
	}

	List struct {
		Dir      string `arg:"" optional:"" name:"dir" help:"${dir_help}" type:"path"`
		Output   string `short:"o" help:"Name of the output file, without extension." placeholder:"NAME"`
		Type     string `short:"t" help:"Type of the formatted output (html, json or both)." placeholder:"TYPE"`
		Workers  int    `short:"j" help:"Number of ROMs parsed concurrently, 0 for one per CPU. (default from configuration)" default:"-1"`
		Template string `help:"HTML report template." type:"existingfile"`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM file or archive containing ROMs." type:"existingfile"`
	}

	ConfigCmd struct {
		Save bool `help:"Save the effective configuration to ${config_file}."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"dir_help":    "Root directory containing the ROMs, its sub-directories are categories.",
	"log_help":    "Enable logging for specified modules.",
	"config_file": "the user configuration directory",
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("gbcat"),
		kong.Description("Catalog Game Boy and Game Boy Color ROMs."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
}

func parseArgs(args []string) CLI {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	cli.mode = commandMode(ctx.Command())
	return cli
}

func commandMode(cmd string) mode {
	switch {
	case strings.HasPrefix(cmd, "rom-infos"):
		return romInfosMode
	case strings.HasPrefix(cmd, "config"):
		return configMode
	case strings.HasPrefix(cmd, "version"):
		return versionMode
	}
	return listMode
}

// applyLogging configures the log package from the logging flags.
func (cli *CLI) applyLogging() {
	if cli.Log.off {
		log.Disable()
		return
	}
	if cli.Verbose {
		log.EnableDebugModules(log.ModuleMaskAll)
	}
	log.EnableDebugModules(cli.Log.mask)
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if ctx.Command() == "" || strings.HasPrefix(ctx.Command(), "list") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask struct {
	mask log.ModuleMask
	off  bool
}

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	var value string
	if err := ctx.Scan.PopValueInto("log", &value); err != nil {
		return err
	}

	var mask log.ModuleMask
	for _, v := range strings.Split(value, ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			mask |= mod.Mask()
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		lm.off = true
		return nil
	}

	if allLogs {
		mask = log.ModuleMaskAll
	}
	lm.mask = mask
	return nil
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
