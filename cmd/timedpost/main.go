package main

import (
	"os"

	"github.com/spf13/cobra"

	"timedpost/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timedpost",
		Short: "TimedPost - marketing site API",
		Long:  `Backend for the TimedPost marketing site: AI free-tool endpoints and the contact form, behind a shared abuse-mitigation pipeline.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
