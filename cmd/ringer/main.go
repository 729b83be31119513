// Command ringer launches a ringing bot for a tower from a terminal form.
package main

import (
	"fmt"
	"os"

	"github.com/tessro/ringer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "🔔 %v\n", err)
		os.Exit(1)
	}
}
