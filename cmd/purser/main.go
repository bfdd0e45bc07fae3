package main

import "github.com/purser-dev/purser/internal/cmd"

func main() {
	cmd.Execute()
}
