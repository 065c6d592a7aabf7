package main

import "github.com/xiam/sexpr-calc/cmd/sexpr/cmd"

func main() {
	cmd.Execute()
}
