// Command advanced-clock shows an animated analog/digital clock over a
// particle background.
package main

import (
	"os"

	"advanced-clock/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
}
