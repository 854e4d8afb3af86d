// Package main is the entry point for the vps-stock-monitor server.
package main

import (
	"os"

	"github.com/laiwenqiang/vps-stock-monitor/cmd/stock-monitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
