// Command bookshelfctl administers the bookshelf database: schema, demo
// catalog, bulk tracker imports and user accounts.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
