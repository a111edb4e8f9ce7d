package main

import (
	"log"

	"github.com/brandonbloom/isbnfix/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("isbnfix: ")
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
