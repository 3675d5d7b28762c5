package commands

import "fmt"

// version is injected at build time via ldflags.
var version = "dev"

func runVersion() error {
	fmt.Println("passgen version", version)
	return nil
}
