// Command lex is the inspect CLI for the lex parser: it reads a .lex
// source file, runs the pipeline, and prints one of the enumerated
// intermediate or final forms (spec.md §6 "CLI surface").
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lex: ")
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
