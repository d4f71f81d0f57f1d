package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/console"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/ledger"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

func main() {
	importPath := flag.String("import", "", "append rows from a ledger CSV file and exit")
	exportPath := flag.String("export", "", "write the ledger to a CSV file and exit")
	flag.Parse()

	defer logger.Sync()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	conf, err := config.New(config.Path())
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	backend, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer storage.Close(backend)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	expenses := ledger.New(backend)
	if err = expenses.Initialize(ctx); err != nil {
		fmt.Println("Failed to initialize expense file.")
		return
	}

	switch {
	case *importPath != "":
		err = importFile(ctx, *importPath, backend)
	case *exportPath != "":
		err = exportFile(ctx, *exportPath, expenses)
	default:
		generator := reports.NewGenerator(conf.App(), expenses)
		err = console.New(os.Stdin, os.Stdout, expenses, generator).Run(ctx)
	}
	if err != nil && err != context.Canceled {
		logger.Error("expense tracker stopped", zap.Error(err))
	}
}

func importFile(ctx context.Context, path string, backend storage.Backend) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := storage.ImportCSV(ctx, f, backend)
	fmt.Printf("Imported %d expenses from %s\n", n, path)
	return err
}

func exportFile(ctx context.Context, path string, expenses *ledger.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	n, err := storage.ExportCSV(ctx, expenses, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	fmt.Printf("Exported %d expenses to %s\n", n, path)
	return err
}
