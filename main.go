package main

import "github.com/pathviz/starpath/cmd"

func main() {
	cmd.Execute()
}
