package main

import "github.com/chriserin/ftreport/cmd"

func main() {
	cmd.Execute()
}
