package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"takehome-engine/internal/handler"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Take-home engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.New()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
