package main

import (
	"os"

	"github.com/planit-app/planit-server/planitservice"
)

func main() {
	if err := planitservice.Run(); err != nil {
		os.Exit(1)
	}
}
