package main

import "github.com/ThatOtherAndrew/pincher/cmd"

func main() {
	cmd.Execute()
}
