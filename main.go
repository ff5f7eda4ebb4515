package main

import "github.com/khanhnv2901/safepi/cmd"

// execCmd is indirected so main stays testable.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
