package main

import "github.com/llehouerou/wavetube/internal/cli"

func main() {
	cli.Execute()
}
