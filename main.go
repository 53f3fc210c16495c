package main

import "roomrenamer/cmd"

func main() {
	cmd.Execute()
}
