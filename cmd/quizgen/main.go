package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Loping1234/NLP/internal/cli"
)

func main() {
	// Best-effort: a local .env may carry OPENAI_API_KEY
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
