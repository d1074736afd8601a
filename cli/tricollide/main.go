// Package main is the tricollide command itself.
package main

import (
	"log"
	"os"

	"go.viam.com/tricollide/cli"
)

func main() {
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
