package main

import "github.com/thepitchdeck/portal/cmd/portal/cmd"

func main() {
	cmd.Execute()
}
