// Command cogctl is the operator CLI for a Cogni Tracker database.
package main

import "github.com/blaisecz/cogni-tracker/internal/cli"

func main() {
	cli.Execute()
}
