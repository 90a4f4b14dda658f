// gitus is a small tool for switching between multiple Git users.
// Profiles are stored in a JSON file in the user's home directory.
package main

import (
	"fmt"
	"os"

	"github.com/mgutz/ansi"

	"github.com/daxog/gitus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ansi.Color("error running app", "red"), err)
		os.Exit(1)
	}
}
