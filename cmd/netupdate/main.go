// Command netupdate loads the router and switch inventory, lets an operator
// update device IP addresses interactively, and writes the updated devices
// and the rejected addresses to two files.
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:]))
}
