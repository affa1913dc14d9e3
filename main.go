package main

import "github.com/crantools/preflight/cmd"

func main() {
	cmd.Execute()
}
