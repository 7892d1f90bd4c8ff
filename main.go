package main

import "github.com/yaoapp/agenda/cmd"

// main program
func main() {
	cmd.Execute()
}
