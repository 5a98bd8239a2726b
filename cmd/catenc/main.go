package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/happyhackingspace/catenc/internal/cli"
)

var version = "dev"

func main() {
	// CATENC_* settings may come from a .env file.
	_ = godotenv.Load()
	if err := cli.New(version).Run(); err != nil {
		os.Exit(1)
	}
}
