package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phishguard",
	Short: "Cybersecurity awareness training backend",
	Long: "PhishGuard — backend for a browser-based security-awareness training site:\n" +
		"static quiz and scenario banks, a password-strength endpoint, and\n" +
		"AI-generated phishing simulations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		// A local .env is a development convenience; absence is fine.
		_ = godotenv.Load()
	})

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
