package main

import "github.com/ClaudiuJitea/SnaklessFasting/cmd/snakless"

func main() {
	snakless.Execute()
}
