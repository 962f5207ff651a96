package main

import "github.com/rail44/abacus/cmd"

func main() {
	cmd.Execute()
}
