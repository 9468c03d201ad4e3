package main

import "shopetl/cmd/shopetl/commands"

func main() {
	commands.Execute()
}
