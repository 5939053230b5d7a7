package main

import "github.com/lirantal/railil/cmd"

func main() {
	cmd.Execute()
}
