package main

import (
	"log"

	"github.com/ferien-api/schulferien/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
