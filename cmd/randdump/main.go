package main

import (
	"os"

	"github.com/reddit/twister.go/cmd/lib/randdump"
)

func main() {
	os.Exit(randdump.Run())
}
