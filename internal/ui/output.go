package ui

import (
	"fmt"

	"github.com/mgutz/ansi"

	"github.com/daxog/gitus/internal/profile"
)

// PrintProfiles prints the stored profiles in a formatted way. The
// profile matching the current git identity (if any) is marked.
func PrintProfiles(users profile.Collection, currentName, currentEmail string) {
	fmt.Println("\nStored profiles:")
	fmt.Println()

	for _, user := range users {
		indicator := " "
		if user.Username == currentName && user.Email == currentEmail {
			indicator = "→"
		}

		fmt.Printf("%s %-20s %-30s %s\n",
			indicator,
			user.Alias,
			user.Email,
			user.Username,
		)
	}

	fmt.Println()
}

// Success prints a success message in green
func Success(message string) {
	fmt.Println(ansi.Color(message, "green"))
}

// Info prints an info message in blue
func Info(message string) {
	fmt.Println(ansi.Color(message, "blue"))
}

// Warning prints a warning message in yellow
func Warning(message string) {
	fmt.Println(ansi.Color(message, "yellow"))
}

// Errorf prints an error message in red
func Errorf(format string, args ...any) {
	fmt.Println(ansi.Color(fmt.Sprintf(format, args...), "red"))
}

// Label colors a message prefix without a trailing newline, used for
// "label: value" lines.
func Label(label, value string) string {
	return fmt.Sprintf("%s %s", ansi.Color(label, "blue"), value)
}
