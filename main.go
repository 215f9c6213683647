package main

import (
	"fmt"
	"os"

	"cosmosexplorer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "explorer run into an error: %s\n", err)
		os.Exit(1)
	}
}
