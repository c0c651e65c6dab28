package main

import "nonton/cmd"

func main() {
	cmd.Execute()
}
