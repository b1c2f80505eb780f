// todo-dashboard serves a single-user task list with status charts.
//
// Usage:
//
//	todo-dashboard            Start the HTTP server (same as "serve")
//	todo-dashboard migrate    Apply database migrations and exit
//	todo-dashboard version    Print the version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
