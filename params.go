package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/booking-qa/booking-contract-tests/framework"
)

type commandParams struct {
	serviceURL string
	configFile string
	outputFile string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the booking API (overrides configuration)")
	fs.StringVar(&c.configFile, "config", "", "path to a configuration file")
	fs.StringVar(&c.outputFile, "output", "", "write a JSON report to this file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select steps to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select steps not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed steps")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all steps")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
