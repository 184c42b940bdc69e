// Package main provides the Descent ML CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Descent ML %s\n", version)
		return
	}

	fmt.Println("Descent ML - Minibatch First-Order Optimizers for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/softmax for a runnable training program.")
}
