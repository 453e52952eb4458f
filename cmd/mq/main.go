package main

import (
	"github.com/joho/godotenv"

	"mindquest/cmd/mq/root"
)

func main() {
	// Optional .env for the AI key and friends; missing file is fine.
	_ = godotenv.Load()

	root.Execute()
}
