package cmd

import (
	"fmt"
	"os"

	"github.com/typefast/snip/internal/state"
	"github.com/typefast/snip/pkg/cmd/root"
)

func Execute() {
	s, err := state.NewState()
	if err != nil {
		fmt.Println("Failed to initialize application state:", err)
		os.Exit(1)
	}

	cmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Println("Failed to initialize the root command:", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
