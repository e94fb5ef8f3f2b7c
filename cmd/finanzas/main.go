package main

import (
	"os"

	"github.com/Wilfredo1970/Finanzas/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
