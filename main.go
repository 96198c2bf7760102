package main

import "github.com/jsphweid/fretdex/cmd"

func main() {
	cmd.Execute()
}
