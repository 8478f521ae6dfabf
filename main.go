package main

import "github.com/gaucho-tools/gauchoplan/cmd"

func main() {
	cmd.Execute()
}
