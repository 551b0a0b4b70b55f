package main

import "github.com/Alexander-D-Karpov/omnis/cmd/omnisctl/cmd"

func main() {
	cmd.Execute()
}
