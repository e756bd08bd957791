// Command mazegen generates mazes and serves them over HTTP.
//
//	mazegen generate --width 20 --height 12 --algorithm wilson --format text
//	mazegen algorithms
//	mazegen serve --config profile.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(1)
	}
}
