package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"srs-intake-be/internal/config"
	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/srsclient"
)

const usage = `usage: srsform [flags] <command> [args]

commands:
  domain <key>                                  show the info panel of a domain
  check   -f state.yaml                         build and verify the payload
  enhance -f state.yaml -target <field> -section <type> [-w]
  submit  -f state.yaml                         send the payload to the generator

flags:
`

func main() {
	cfg := config.Load()

	global := flag.NewFlagSet("srsform", flag.ExitOnError)
	server := global.String("server", cfg.Generator.BaseURL, "document generator base URL")
	lenient := global.Bool("lenient-domain", !cfg.Form.StrictDomainRequired, `submit "Other" when no custom domain is given`)
	logPath := global.String("log", "logs/srsform.log", "log file")
	global.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		global.PrintDefaults()
	}
	_ = global.Parse(os.Args[1:])

	args := global.Args()
	if len(args) == 0 {
		global.Usage()
		os.Exit(2)
	}

	sysLogger := logger.NewIsolatedLogger(*logPath)
	defer sysLogger.Sync()

	client := srsclient.NewClient(*server)
	client.SubmitPath = cfg.Generator.GeneratePath
	client.EnhancePath = cfg.Generator.EnhancePath

	a := &app{
		out:    os.Stdout,
		client: client,
		strict: !*lenient,
		log:    sysLogger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, a, args[0], args[1:]); err != nil {
		sysLogger.Error("CLI", "Command failed", map[string]interface{}{
			"command": args[0],
			"error":   err.Error(),
		})
		failure.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	file := fs.String("f", "", "form state fixture (YAML or JSON)")
	target := fs.String("target", "", "field to enhance")
	section := fs.String("section", "", `section type ("Problem Statement", "Core Features", "Primary User Flow")`)
	write := fs.Bool("w", false, "write the enhanced value back to the fixture")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if command == "domain" {
		if fs.NArg() != 1 {
			return fmt.Errorf("domain needs exactly one key")
		}
		return a.runDomain(ctx, fs.Arg(0))
	}

	if *file == "" {
		return fmt.Errorf("%s needs -f <state file>", command)
	}
	state, err := loadState(*file)
	if err != nil {
		return err
	}

	switch command {
	case "check":
		return a.runCheck(state)
	case "enhance":
		if *target == "" || *section == "" {
			return fmt.Errorf("enhance needs -target and -section")
		}
		enhanced, err := a.runEnhance(ctx, state, *target, *section)
		if err != nil {
			return err
		}
		if *write {
			return saveState(*file, enhanced)
		}
		return nil
	case "submit":
		return a.runSubmit(ctx, state)
	}
	return fmt.Errorf("unknown command %q", command)
}
