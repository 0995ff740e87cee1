package main

import "emoji-catalog/cmd"

func main() {
	cmd.Execute()
}
