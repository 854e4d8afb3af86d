// Package main is the entry point for the vsm CLI client.
package main

import (
	"github.com/laiwenqiang/vps-stock-monitor/cmd/vsm/cmd"
)

func main() {
	cmd.Execute()
}
