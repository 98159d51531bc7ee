package main

import "reelfetch/cmd"

func main() {
	cmd.Execute()
}
