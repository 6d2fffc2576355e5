package main

import (
	"os"

	"github.com/SamratSK/better-bites/trackerservice"
)

func main() {
	if err := trackerservice.Run(); err != nil {
		os.Exit(1)
	}
}
