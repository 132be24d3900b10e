package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"os"
)

var mainCommand = &cobra.Command{
	Use:          "viewq",
	Short:        "Build and run couch view queries",
	SilenceUsage: true,
}

func main() {
	// .env may not exist
	_ = godotenv.Load()
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
