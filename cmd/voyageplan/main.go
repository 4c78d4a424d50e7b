package main

import (
	"github.com/avolkov/voyageplan-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
