package main

import "github.com/okoye-peter/project-management-app/cmd"

func main() {
	cmd.Execute()
}
