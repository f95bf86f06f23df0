// Command stagetimer runs a full-screen presentation countdown in the terminal.
package main

import "github.com/opencode-ai/stagetimer/internal/cli"

func main() {
	cli.Execute()
}
