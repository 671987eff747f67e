package main

import "github.com/WesH0use/Work-Log-Database/cmd"

func main() {
	cmd.Execute()
}
