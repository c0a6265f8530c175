package main

import "hub-sync/cmd"

func main() {
	cmd.Execute()
}
