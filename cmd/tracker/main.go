package main

import "github.com/dukerupert/togethertracker/cmd/tracker/root"

func main() {
	root.Execute()
}
