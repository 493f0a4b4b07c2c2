package main

import "github.com/dmitrijs2005/usersrpc/internal/client/cli"

func main() {
	cli.Execute()
}
