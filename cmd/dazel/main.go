package main

import (
	"os"

	"github.com/dazelbuild/dazel/internal/cli"
)

// Build-time variable (set via ldflags)
var version = "dev"

func main() {
	app := cli.New()
	app.SetVersion(version)
	os.Exit(app.Execute())
}
