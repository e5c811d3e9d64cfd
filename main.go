package main

import (
	"github.com/MyelinBots/userapi-go/cmd"
)

func main() {
	cmd.Execute()
}
