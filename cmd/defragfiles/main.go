package main

import (
	"log"
	"os"

	"github.com/dargueta/diskfrag/cmd/internal/app"
	"github.com/dargueta/diskfrag/compact"
)

func main() {
	cli := app.New(
		"defragfiles",
		"Compact a disk map moving whole files and print its checksum",
		compact.WholeFile,
	)

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}
