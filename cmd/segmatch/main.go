package main

import "github.com/katalvlaran/segmatch/internal/cli"

func main() {
	cli.Execute()
}
