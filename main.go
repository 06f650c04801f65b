package main

import "github.com/rubiojr/pycpp/cmd"

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
