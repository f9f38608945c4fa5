// Laporan penjualan dari command line: baca store yang dikonfigurasi, filter
// riwayat, tulis CSV atau tabel ke stdout.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go-pos-kasir/internal/config"
	"go-pos-kasir/internal/export"
	"go-pos-kasir/internal/ledger"
	"go-pos-kasir/internal/store"
	"go-pos-kasir/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	searchID := flag.String("search", "", "filter by transaction id substring")
	date := flag.String("date", "", "filter by date prefix (YYYY-MM-DD)")
	format := flag.String("format", "csv", "output format: csv or table")
	flag.Parse()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Load Config + Store
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer st.Close()

	// 3. Load ledger dan tulis laporan
	led, err := ledger.Load(context.Background(), st)
	if err != nil {
		log.Fatal("Failed to load ledger: ", err)
	}

	txs := led.Query(ledger.Filter{ID: *searchID, Date: *date})

	switch *format {
	case "table":
		err = export.WriteTable(os.Stdout, txs)
	default:
		err = export.WriteCSV(os.Stdout, txs)
	}
	if err != nil {
		log.Fatal("Failed to write report: ", err)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "redis":
		return store.NewRedisStore(cfg.Store.RedisAddr)
	case "postgres":
		db, err := database.Connect(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	default:
		return store.NewFileStore(cfg.Store.DataDir)
	}
}
