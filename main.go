package main

import "github.com/papapumpkin/lifeweeks/cmd"

func main() {
	cmd.Execute()
}
