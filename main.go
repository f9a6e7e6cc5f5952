package main

import "github.com/hashiba-k-jp/C-LOTUS/cmd"

func main() {
	cmd.Execute()
}
