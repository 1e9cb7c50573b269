package main

import "github.com/abap-tools/abaplens/internal/cli"

func main() {
	cli.Execute()
}
