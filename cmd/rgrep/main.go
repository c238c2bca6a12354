package main

import (
	"os"

	"github.com/dl/rgrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
