package main

import "github.com/jsphweid/fretcards/cmd"

func main() {
	cmd.Execute()
}
