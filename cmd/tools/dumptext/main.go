// dumptext prints the extracted text blob for a filing. Useful when
// authoring a metric pattern table against a new document: run this,
// then write expressions against what the extractor actually sees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"filing_insight/pkg/core/ingest"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dumptext <filing.pdf|filing.htm>")
		os.Exit(1)
	}

	text, err := ingest.New().Extract(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Println(text)
}
