package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  church demo")
	fmt.Fprintln(os.Stderr, "  church run [church.yml | directory]")
	fmt.Fprintln(os.Stderr, "  church fetch <git-url> (--rev <rev> | --tag <tag> | --branch <branch>)")
	fmt.Fprintln(os.Stderr, "  church version")
}
