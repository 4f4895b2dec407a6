package main

import (
	"os"

	"github.com/aitaprogrammer/blogify-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
