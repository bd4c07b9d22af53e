package main

import (
	"logistics-dashboard/cmd/cli/cmd"
)

func main() {
	cmd.Execute()
}
