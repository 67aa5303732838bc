package main

import "pratika/internal/cli"

func main() {
	cli.Execute()
}
