package main

import (
	"os"

	"github.com/zmzehd/markdown2html/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
