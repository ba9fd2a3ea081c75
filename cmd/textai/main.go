package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the process environment is used either way.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment variables from .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
