package main

import (
	"os"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
