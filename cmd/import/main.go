package main

import (
	"fmt"
	"log"
	"os"

	"saleschart-backend/internal/config"
	"saleschart-backend/internal/database"
	"saleschart-backend/internal/importer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: import <export-file>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg := config.Load()
	database.Init(cfg)

	imp := importer.New(importer.NewRepositories(database.DB))
	count, err := imp.ImportFile(path)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d rows from %s\n", count, path)
}
