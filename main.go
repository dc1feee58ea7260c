package main

import "github.com/koki-develop/imgascii/cmd"

func main() {
	cmd.Execute()
}
