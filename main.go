package main

import "catalog-web/cmd"

func main() {
	cmd.Execute()
}
