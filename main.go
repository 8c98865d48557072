package main

import "fromenv/cmd"

func main() {
	cmd.Execute()
}
