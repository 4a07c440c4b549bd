package main

import "github.com/hikari-no-yume/dream-sparer/cmd/dream-sparer/cmd"

func main() {
	cmd.Execute()
}
