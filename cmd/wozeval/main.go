// cmd/wozeval/main.go
package main

import (
	cmd "github.com/dstlab/wozeval/internal/cli"
)

// main starts the wozeval CLI application by delegating to the
// cobra root command defined in the wozeval package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
