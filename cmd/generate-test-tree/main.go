// generate-test-tree writes a directory tree to disk for exercising the
// widget with large item counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	numFiles := flag.Int("files", 1000, "Number of files to generate")
	output := flag.String("output", "test-tree", "Output directory path")
	depth := flag.Int("depth", 3, "Maximum nesting depth")
	fanout := flag.Int("fanout", 10, "Files per directory before descending")
	flag.Parse()

	if *numFiles < 1 {
		fmt.Fprintf(os.Stderr, "files must be at least 1\n")
		os.Exit(1)
	}
	if *fanout < 1 {
		fmt.Fprintf(os.Stderr, "fanout must be at least 1\n")
		os.Exit(1)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create directory: %v\n", err)
		os.Exit(1)
	}

	remaining := *numFiles
	written, err := generateLevel(*output, &remaining, 0, *depth, *fanout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate tree: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d files under %s\n", written, *output)
}

// generateLevel fills dir with fanout files, then recurses into
// subdirectories until remaining runs out or maxDepth is reached
func generateLevel(dir string, remaining *int, currentDepth, maxDepth, fanout int) (int, error) {
	written := 0

	for i := 0; i < fanout && *remaining > 0; i++ {
		name := fmt.Sprintf("file-%06d.txt", *remaining)
		content := fmt.Sprintf("test file %d at depth %d\n", *remaining, currentDepth)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return written, err
		}
		*remaining--
		written++
	}

	if currentDepth >= maxDepth {
		return written, nil
	}

	for i := 0; *remaining > 0; i++ {
		sub := filepath.Join(dir, fmt.Sprintf("dir-%d-%d", currentDepth, i))
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return written, err
		}
		n, err := generateLevel(sub, remaining, currentDepth+1, maxDepth, fanout)
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			// Nothing fit; avoid spinning on empty directories
			if rmErr := os.Remove(sub); rmErr != nil {
				return written, rmErr
			}
			break
		}
	}

	return written, nil
}
