package main

import (
	"os"

	"github.com/alantheprice/consoletk/cmd"
	"github.com/alantheprice/consoletk/pkg/logging"
)

func main() {
	// Get the logger instance
	logger := logging.GetLogger()
	// Defer closing the logger to ensure all buffered logs are written
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		// Log the error before exiting
		logger.Logf("Application error: %v", err)
		os.Exit(1)
	}
}
