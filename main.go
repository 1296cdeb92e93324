package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pstuifzand/treelist/internal/app"
	"github.com/pstuifzand/treelist/internal/config"
)

func main() {
	logFile, err := os.Create("treelist.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (logs key events and redraw state)")
	order := flag.String("order", "", "Display order: forward or reverse (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *order != "" {
		cfg.Order = *order
	}

	roots := flag.Args()
	if len(roots) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		roots = []string{cwd}
	}

	application, err := app.NewApp(cfg, roots...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}
