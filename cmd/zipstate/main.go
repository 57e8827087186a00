package main

import "github.com/hupe1980/zipstate/internal/cli"

func main() {
	cli.Execute()
}
