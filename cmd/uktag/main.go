// Command uktag prints additional readings for Ukrainian words: numerals,
// dates and hyphenated compounds the dictionary does not list.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
