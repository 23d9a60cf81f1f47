// Command nostl-tests runs the container demo tests by name:
//
//	nostl-tests <container> <test> [flags]
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
