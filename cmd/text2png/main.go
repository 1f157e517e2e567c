package main

import "github.com/glyphlab/text2png/cmd"

func main() {
	cmd.Execute()
}
