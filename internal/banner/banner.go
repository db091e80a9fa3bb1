// Package banner prints the hfpagd daemon's startup banner, adapted
// from the teacher's startup banner: a logo, the running configuration
// lines, and a ready marker.
package banner

import (
	"fmt"
	"strings"
)

const logo = `
======================================================================
 _  _ _____ ____      _    ____ ____
| || |  ___|  _ \    / \  / ___|  _ \
| || |_|_  \ |_) |  / _ \| |  _| | | |
|__   _|__) |  __/  / ___ \ |_| | |_| |
   |_||____/|_|    /_/   \_\____|____/
----------------------------------------------------------------------`

const footer = `======================================================================`

// ConfigLine represents a single configuration line to display.
type ConfigLine struct {
	Label string
	Value string
}

// Print displays the startup banner with the service name and
// configuration.
func Print(serviceName string, config []ConfigLine) {
	fmt.Println(logo)
	fmt.Printf("%s\n", serviceName)

	maxLen := 0
	for _, c := range config {
		if len(c.Label) > maxLen {
			maxLen = len(c.Label)
		}
	}

	for _, c := range config {
		padding := strings.Repeat(" ", maxLen-len(c.Label))
		fmt.Printf("  %s%s : %s\n", c.Label, padding, c.Value)
	}

	fmt.Println()
	fmt.Println("Ready.")
	fmt.Println(footer)
	fmt.Println()
}
