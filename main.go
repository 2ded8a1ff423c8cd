package main

import (
	"os"

	"github.com/cdiazbas/norwegian-quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
