package main

import "update-reconciler/cmd"

func main() {
	cmd.Execute()
}
