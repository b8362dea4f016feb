// Command domain-checker reads a blocklist and a list of queries from
// standard input and prints "Bad" or "Good" for every query.
//
// Input format:
//
//	N
//	<N blocked domains, one per line>
//	M
//	<M queried domains, one per line>
package main

import (
	"bufio"
	"log"
	"os"

	"forbidden-domains/internal/batch"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("domain-checker: ")

	if err := batch.Run(bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		log.Fatal(err)
	}
}
