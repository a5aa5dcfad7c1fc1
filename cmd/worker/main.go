package main

import "github.com/propledger/go-fp-rollup/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
