package main

import (
	"fmt"
	"os"

	"github.com/bullish-design/templateer/internal/cli"
	"github.com/bullish-design/templateer/pkg/ui"

	// Import the model package so its init() functions register the bindings
	_ "github.com/bullish-design/templateer/templateer/models"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := "Error: " + err.Error()
		if ui.Resolve(ui.FormatAuto, os.Stderr) == ui.FormatTerminal {
			msg = ui.DefaultStyles().Get(ui.StyleError).Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
