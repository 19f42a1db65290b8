// kelola-demo runs the self-contained manage-aset backend with seeded
// fixtures, for local development of the TUI and for manual API poking.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kelola-aset/kelola/internal/demoapi"
)

func main() {
	var addr string
	var secret string

	flag.StringVar(&addr, "addr", "0.0.0.0:8600", "listen address")
	flag.StringVar(&secret, "secret", "", "JWT signing secret (default $KELOLA_JWT_SECRET)")
	flag.Parse()

	_ = godotenv.Load()

	if secret == "" {
		secret = os.Getenv("KELOLA_JWT_SECRET")
	}
	if secret == "" {
		secret = "kelola-demo-secret"
		log.Println("no JWT secret configured, using the built-in demo secret")
	}

	srv := demoapi.NewServer(addr, secret, demoapi.NewStore())
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
		os.Exit(1)
	}
	log.Printf("demo API listening on %s", srv.Addr())
	log.Printf("login with %s / %s", demoapi.DefaultEmail, demoapi.DefaultPassword)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := srv.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		os.Exit(1)
	}
}
