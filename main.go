package main

import "github.com/O33ero/qfactor/cmd"

func main() {
	cmd.Execute()
}
