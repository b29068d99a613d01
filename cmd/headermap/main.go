// Package main provides the headermap CLI, the header path resolution
// front end of the j2native toolchain.
package main

import "github.com/joho/godotenv"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	Execute()
}
