package main

import "github.com/tinybox-os/tinybox/cmd"

func main() {
	cmd.Execute()
}
