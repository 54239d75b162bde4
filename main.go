package main

import (
	"os"

	"minigo/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
