package main

import (
	"os"

	"github.com/geography-microservice/cmd/geographyctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
