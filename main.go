package main

import "github.com/jsphweid/harmonia/cmd"

func main() {
	cmd.Execute()
}
