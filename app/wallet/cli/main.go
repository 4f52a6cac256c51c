package main

import (
	"github.com/ledgermint/ledgermint/app/wallet/cli/cmd"
)

func main() {
	cmd.Execute()
}
