package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title AI Document Q&A API
// @version 1.0
// @description Upload PDFs and media, then chat with or summarize them.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
