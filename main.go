package main

import "github.com/fluxoryn/vibe-fuse/cmd"

func main() {
	cmd.Execute()
}
