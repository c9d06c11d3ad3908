package main

import (
	"context"
	"flag"
	"log"
	"os"

	sigilcmd "github.com/GeorgeW-alt2/sigil/internal/cmd/sigil"
	"github.com/GeorgeW-alt2/sigil/internal/platform/config"
)

// main opens the symbol generator window.
func main() {
	cfg, err := sigilcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[SIGIL] ")

	if err := sigilcmd.Run(context.Background(), cfg); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
