package main

import "github.com/jsphweid/midi2hltas/cmd"

func main() {
	cmd.Execute()
}
