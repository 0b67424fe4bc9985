package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/commands"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'aura --help' for usage.")
		}
		os.Exit(1)
	}
}
