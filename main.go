package main

import "rivalscomp/cmd"

func main() {
	cmd.Execute()
}
