package main

import (
	"log"
	"os"

	"github.com/revault/coordinatord/cmd/coordinator-cli/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		log.Fatalf("failed to run coordinator-cli: %v", err)
	}

	os.Exit(0)
}
