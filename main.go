package main

import "github.com/mintgene/allocation-ledger/cli"

func main() {
	cli.Execute()
}
