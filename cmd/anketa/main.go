// Command anketa reads a file of questionnaire blocks, keeps the fully valid
// ones and prints the oldest and the youngest respondent.
//
// Usage:
//
//	anketa [--lang ru|en] [--verbose] data.txt
package main

import (
	"os"
	"time"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}
