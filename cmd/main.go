package main

import "github.com/consensys/go-zkvm/pkg/cmd"

func main() {
	cmd.Execute()
}
