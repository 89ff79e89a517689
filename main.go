// Command b1 builds the B1 detector geometry and exports it for particle transport codes.
package main

import (
	"github.com/hanc4-git/B1/cmd"
)

func main() {
	cmd.Execute()
}
