package main

import "leadscout/internal/cli"

func main() {
	cli.Execute()
}
