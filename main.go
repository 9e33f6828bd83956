package main

import "github.com/AdityaBargujar/accessibility-analyzer/cmd"

func main() {
	cmd.Execute()
}
