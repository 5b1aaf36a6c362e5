package main

import "github.com/lferraz/prodash/internal/cli"

func main() {
	cli.Execute()
}
