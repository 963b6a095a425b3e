package main

import (
	"log"

	"socialnet-client/internal/transport/http"
)

func main() {
	if err := http.Run(); err != nil {
		log.Fatalf("Client failed: %v", err)
	}
}
