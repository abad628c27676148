package main

import "savings-site/cli"

func main() {
	cli.Execute()
}
