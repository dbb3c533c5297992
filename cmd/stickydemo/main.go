// Command stickydemo shows a sectioned list whose current section header stays
// pinned to the top of the viewport.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
