package main

import (
	"os"

	"github.com/dmitrijs2005/chirpy/internal/ctl"
)

func main() {
	os.Exit(ctl.Run(os.Args[1:], os.Stdout, os.Stderr))
}
