package main

import (
	"fmt"
	"os"
	"time"

	"github.com/booking-qa/booking-contract-tests/bookingtests"
	"github.com/booking-qa/booking-contract-tests/client"
	"github.com/booking-qa/booking-contract-tests/config"
	"github.com/booking-qa/booking-contract-tests/framework"
	"github.com/booking-qa/booking-contract-tests/logging"

	"github.com/google/uuid"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg, err := config.Load(params.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}
	if params.serviceURL != "" {
		cfg.BaseURL = params.serviceURL
	}

	mainDebugLogger := logging.NullLogger()
	if params.debugAll {
		mainDebugLogger = logging.NewDebugLogger()
	}

	apiClient := client.NewBookingServiceClient(cfg.BaseURL, cfg.Timeout(), mainDebugLogger)
	runID := uuid.NewString()

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Printf("Running booking API test suite against %s (run %s)\n", cfg.BaseURL, runID)

	testLogger := ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	credentials := client.Credentials{Username: cfg.Username, Password: cfg.Password}
	results := bookingtests.RunTestSuite(apiClient, credentials, params.filters.AsFilter, &testLogger)

	fmt.Println()
	framework.PrintResults(results)

	if params.outputFile != "" {
		if err := writeReportFile(params.outputFile, runID, cfg.BaseURL, results); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write report: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote JSON report to %s\n", params.outputFile)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func writeReportFile(path, runID, baseURL string, results framework.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	meta := framework.ReportMetadata{RunID: runID, Time: time.Now(), BaseURL: baseURL}
	err = framework.WriteJSONReport(f, meta, results)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
