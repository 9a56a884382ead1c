package main

import "github.com/hsml-lab/hsml/cmd/hsml/command"

func main() {
	command.Execute()
}
