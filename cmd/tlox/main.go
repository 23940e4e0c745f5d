// Command tlox runs go-tlox programs from a file or an inline snippet.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-tlox/cmd/tlox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
