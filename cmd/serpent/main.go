package main

import (
	"math/rand"
	"time"

	"github.com/serpentlabs/serpent/cmd/serpent/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
