package main

import "github.com/andrescamacho/fantasy-manager-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
