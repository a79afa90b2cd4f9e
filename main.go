package main

import (
	"os"

	"github.com/Musiitwa-Joel/doclair-sub001/pkg/cli"
)

func main() {
	os.Exit(cli.Run())
}
