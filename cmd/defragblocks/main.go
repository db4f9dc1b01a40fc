package main

import (
	"log"
	"os"

	"github.com/dargueta/diskfrag/cmd/internal/app"
	"github.com/dargueta/diskfrag/compact"
)

func main() {
	cli := app.New(
		"defragblocks",
		"Compact a disk map one block at a time and print its checksum",
		compact.BlockLevel,
	)

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}
