package main

import (
	"github.com/mwjones-dev/pokernight/internal/cli"
)

func main() {
	cli.Execute()
}
