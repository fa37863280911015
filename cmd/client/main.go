package main

import "bomkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
