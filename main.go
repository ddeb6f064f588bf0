package main

import "github.com/capybara-brain346/decision-tree-engine/cmd"

func main() {
	cmd.Execute()
}
