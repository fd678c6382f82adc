package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goflags "github.com/jessevdk/go-flags"

	"github.com/five82/angkor/internal/app"
)

var version = "dev"

// cliOptions are the command-line flags. Each one overrides the config file.
type cliOptions struct {
	Config   string `long:"config" description:"config file path" value-name:"PATH"`
	Endpoint string `long:"endpoint" description:"temple catalog API endpoint" value-name:"URL"`
	Storage  string `long:"storage" description:"favorites and preferences file" value-name:"PATH"`
	LogFile  string `long:"log-file" description:"JSON log file" value-name:"PATH"`
	Version  bool   `long:"version" description:"print version and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		flagsErr, ok := err.(*goflags.Error)
		if ok && flagsErr.Type == goflags.ErrHelp {
			return 0
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "angkor: %v\n", err)
		}
		return 2
	}
	if opts.Version {
		fmt.Printf("angkor %s\n", version)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{
		ConfigPath:  opts.Config,
		Endpoint:    opts.Endpoint,
		StoragePath: opts.Storage,
		LogFile:     opts.LogFile,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "angkor: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "angkor"
	parser.LongDescription = "Browse the temples of Cambodia and keep a list of favorites."
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return opts, err
	}
	if len(rest) > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", rest)
	}
	return opts, nil
}
