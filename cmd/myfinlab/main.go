package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"myfinlab/internal/cli"
)

// runMain executes the main application logic and returns the exit code
// This function is extracted for testing purposes
func runMain() int {
	// Optional .env for MYFINLAB_PLUGIN_PATH and MYFINLAB_LOG_LEVEL overrides.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	exitCode := runMain()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
