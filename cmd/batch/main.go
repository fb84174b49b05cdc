package main

// Process a directory of PDFs without the HTTP server:
//   go run ./cmd/batch -dir ./inbox

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docproc-backend/internal/bootstrap"
	"docproc-backend/internal/shared/config"
)

func main() {
	dir := flag.String("dir", ".", "directory of PDF files to process")
	flag.Parse()

	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	paths, err := collectPDFs(*dir)
	if err != nil {
		log.Fatalf("scan %s: %v", *dir, err)
	}
	if len(paths) == 0 {
		log.Fatalf("no PDF files in %s", *dir)
	}

	entries := app.Processor.ProcessBatch(context.Background(), paths)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		log.Fatalf("encode results: %v", err)
	}
}

func collectPDFs(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, item := range items {
		if item.IsDir() || !strings.HasSuffix(strings.ToLower(item.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, item.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
