package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/anoncreds/anoncreds-go/pkg/anoncreds"
)

func main() {
	// A .env next to the binary may set ANONCREDS_LIBRARY_PATH and
	// ANONCREDS_LOG_LEVEL; its absence is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("read .env: %v", err)
	}

	log.Printf("anoncreds-go version: %s", anoncreds.WrapperVersion())

	cfg, err := anoncreds.ConfigFromEnv()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	a, err := anoncreds.Open(cfg)
	if err != nil {
		if errors.Is(err, anoncreds.ErrNotBuilt) || errors.Is(err, anoncreds.ErrLibraryNotFound) {
			fmt.Printf("library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening library: %v", err)
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()
	anoncreds.Register(a)

	fmt.Printf("libanoncreds version: %s\n", anoncreds.NativeVersion())
	nonce, err := a.GenerateNonce(context.Background())
	if err != nil {
		log.Fatalf("generate nonce: %v", err)
	}
	fmt.Printf("sample nonce: %s\n", nonce)
}
