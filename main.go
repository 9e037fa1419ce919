package main

import "github.com/notargets/gomate/cmd"

func main() {
	cmd.Execute()
}
