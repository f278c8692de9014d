// Command yahtzeeserver runs the yahtzeesolver REST/WebSocket API server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/yourusername/yahtzeesolver/pkg/server"
	"github.com/yourusername/yahtzeesolver/pkg/solver"
)

const version = "0.1.0"

func main() {
	host := flag.String("host", "localhost", "Host to bind to (use 0.0.0.0 for all interfaces)")
	port := flag.Int("port", 8080, "Port to listen on")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	precompute := flag.Bool("precompute", false, "Run the full DP at startup instead of lazily on first query")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("yahtzeeserver v%s\n", version)
		os.Exit(0)
	}

	log.Printf("yahtzeesolver API server v%s", version)

	opts := solver.DefaultOptions()
	opts.Evaluate = *precompute

	s, err := solver.BuildSolver(opts)
	if err != nil {
		log.Fatalf("failed to build solver: %v", err)
	}

	if *precompute {
		log.Printf("solver evaluated: expected score = %.4f", s.ExpectedScore())
	}

	config := server.Config{
		Host:           *host,
		Port:           *port,
		ReadTimeout:    *readTimeout,
		WriteTimeout:   *writeTimeout,
		IdleTimeout:    60 * time.Second,
		MaxFastWorkers: 100,
		MaxSlowWorkers: 1,
	}

	srv := server.NewServer(s, config, version)
	if err := srv.ListenAndServeWithGracefulShutdown(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
