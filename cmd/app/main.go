package main

import (
	"os"

	"github.com/wfca-mz/fire-widget/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
