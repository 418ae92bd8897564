package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const releaseVersion = "0.1.0"

func main() {
	log.SetFlags(0)

	// A .env file is optional; environment variables win either way
	_ = godotenv.Load()

	cfg := &Config{}
	cobra.CheckErr(newRootCmd(cfg).Execute())
}
