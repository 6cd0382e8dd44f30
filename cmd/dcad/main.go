package main

import "github.com/draftcad/draftcad/cmd/dcad/cmd"

func main() {
	cmd.Execute()
}
