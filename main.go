package main

import "github.com/alexiusacademia/gorda/cmd"

func main() {
	cmd.Execute()
}
