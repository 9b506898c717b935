package main

import (
	"log"

	"github.com/tinoworks/tinomacro/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
