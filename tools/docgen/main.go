// Package main generates CLI reference documentation from the vsm and
// stock-monitor command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	servercmd "github.com/laiwenqiang/vps-stock-monitor/cmd/stock-monitor/cmd"
	vsmcmd "github.com/laiwenqiang/vps-stock-monitor/cmd/vsm/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	for name, root := range map[string]*cobra.Command{
		"vsm":           vsmcmd.Root(),
		"stock-monitor": servercmd.Root(),
	} {
		if err := generate(root, filepath.Join(*output, name)); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}
