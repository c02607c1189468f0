package main

import (
	"errors"
	"fmt"
	"os"
)

const cliToolVersion = "church-cli 0.1.0"

var errManifestNotFound = errors.New("church.yml not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "demo":
		return runDemo(args[1:])
	case "run":
		return runManifest(args[1:])
	case "fetch":
		return runFetch(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}
