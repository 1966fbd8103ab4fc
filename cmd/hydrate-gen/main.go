package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/hydrate"
	"github.com/suparena/hydrate/processor"
)

var showVersion bool

func init() {
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&showVersion, "v", false, "print version information (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		info := hydrate.GetVersionInfo()
		fmt.Printf("hydrate-gen %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildDate, info.GoVersion)
		os.Exit(0)
	}

	processor.Main()
}
