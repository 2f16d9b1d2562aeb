package main

import (
	"treense/cmd"
)

// @title Treense API
// @version 1.0
// @description Tree health analysis record service.
// @BasePath /
func main() {
	cmd.Execute()
}
