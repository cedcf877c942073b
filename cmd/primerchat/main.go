package main

import (
	"os"

	"primerchat/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
