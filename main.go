package main

import "github.com/user/playsketch-cli/cmd"

func main() {
	cmd.Execute()
}
