package main

import "github.com/ferien-api/schulferien/pkg/cli"

func main() {
	cli.Execute()
}
