package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CristiGvl/picoCPUCount/api"
	"github.com/CristiGvl/picoCPUCount/internal/platform"
	"github.com/CristiGvl/picoCPUCount/internal/probe"
)

func main() {
	// Parse command line flags
	port := flag.String("port", "8080", "Port to run the server on")
	bind := flag.String("bind", "0.0.0.0", "IP address to bind the server to")
	once := flag.Bool("once", false, "Print the counts as JSON and exit")
	flag.Parse()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	if *once {
		counts, err := probe.Counts(context.Background())
		if err != nil {
			log.Fatalf("Probe failed: %v", err)
		}
		out, err := json.Marshal(counts)
		if err != nil {
			log.Fatalf("Failed to encode counts: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	// Create and start the API server
	server, err := api.NewServer()
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	// Start the server
	log.Printf("Starting picoCPUCount server on %s:%s", *bind, *port)
	log.Fatal(server.Start(*bind + ":" + *port))
}
