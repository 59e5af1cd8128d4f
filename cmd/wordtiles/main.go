package main

import (
	"github.com/wordtiles/wordtiles-go/internal/cli"
)

func main() {
	cli.Execute()
}
