// Command mapzoom replays gesture scripts against the map camera and prints
// the viewBox sequence it produces.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
