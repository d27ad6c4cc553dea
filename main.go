package main

import "github.com/hoppxi/blight/internal/cmd"

func main() {
	cmd.Execute()
}
