package main

import "github.com/openlearnhq/curriculum/cmd"

func main() {
	cmd.Execute()
}
