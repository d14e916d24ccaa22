package main

import (
	"os"

	"github.com/vibeheim/guidlint/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
