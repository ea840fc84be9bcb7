package main

import (
	"os"

	"github.com/axelarnetwork/polls/cmd/pollsd/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
