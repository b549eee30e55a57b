package main

import (
	"github.com/heliosinger/streamkit/cmd"
)

// Version is the current version of streamkit
// It is set at build time by using -ldflags "-X main.version=x.x.x"
var version string

func main() {
	cmd.Execute(version)
}
