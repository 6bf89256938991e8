package main

import (
	"os"

	"github.com/go-kit/log/level"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		level.Error(newLogger(os.Stderr, false)).Log("err", err)
		os.Exit(1)
	}
}
