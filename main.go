// main.go
//
// Entry point for the wordle binary. Commands live in internal/cli:
//   wordle serve                  HTTP game server
//   wordle play [--daily]         terminal player
//   wordle check <guess> <secret> score one guess
//   wordle words [word...]        word list stats and lookups
package main

import "github.com/robalobadob/wordle-engine/internal/cli"

func main() {
	cli.Execute()
}
