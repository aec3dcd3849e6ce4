// Command ghinsights serves and prints dashboards for github profiles and repositories.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env file is fine, environment is used as is then.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
