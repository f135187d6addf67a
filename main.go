package main

import "github.com/typefast/snip/cmd"

func main() {
	cmd.Execute()
}
