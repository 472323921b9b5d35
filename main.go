package main

import "scoregen/cmd"

func main() {
	cmd.Execute()
}
