package main

import "github.com/pchrisoc/minesweeper/cmd"

func main() {
	cmd.Execute()
}
