package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/bullish-design/templateer/internal/cli"
	"github.com/bullish-design/templateer/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TEMPLATEER",
		Section: "1",
		Source:  "templateer " + version.Version,
		Manual:  "templateer manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
