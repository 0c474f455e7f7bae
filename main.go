package main

import (
	"fmt"
	"os"

	"github.com/fraserkalirai/fraser-2025-recap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
