package main

import "cunycal/cmd"

func main() {
	cmd.Execute()
}
