// Command borderglow prints, renders and previews the animated gradient
// border overlay.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-drift/border/cmd/borderglow/cmd"
	"github.com/go-drift/border/pkg/errors"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("borderglow: ")
	verbose := os.Getenv("BORDERGLOW_VERBOSE") != ""
	errors.SetHandler(&errors.LogHandler{Verbose: verbose})
	if !verbose {
		// State reports are diagnostics for hosts; keep them out of normal output.
		defer errors.Mute(errors.KindState)()
	}

	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
