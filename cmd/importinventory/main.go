// Command importinventory loads a stock spreadsheet into the inventory table
// of the configured database.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/LarzzCode/LarGarage/config"
	"github.com/LarzzCode/LarGarage/importer"
	"github.com/LarzzCode/LarGarage/repository"
	"github.com/LarzzCode/LarGarage/utils"
)

func main() {
	file := flag.String("file", "", "path to the .xlsx stock sheet")
	dryRun := flag.Bool("dry-run", false, "parse only, do not insert")
	flag.Parse()

	utils.InitLogger()
	if *file == "" {
		utils.ErrorLogger.Println("usage: importinventory -file stok.xlsx [-dry-run]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.SetLogLevel(cfg.LogLevel)

	f, err := os.Open(*file)
	if err != nil {
		utils.ErrorLogger.Fatalf("Open %s: %v", *file, err)
	}
	defer f.Close()

	rows, err := importer.ParseInventory(f)
	if err != nil {
		utils.ErrorLogger.Fatalf("Gagal import Excel. Cek format data. (%v)", err)
	}
	if *dryRun {
		for _, item := range rows {
			utils.InfoLogger.Printf("%s | %s | %s | %s | stok %s", item.SKU, item.Name, item.Brand, utils.FormatRupiah(item.Price), utils.FormatNumber(int64(item.Stock)))
		}
		utils.InfoLogger.Printf("%d baris terbaca (dry run)", len(rows))
		return
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	n, err := repository.NewInventoryRepository(db).CreateMany(context.Background(), rows)
	if err != nil {
		utils.ErrorLogger.Fatalf("Insert inventory: %v", err)
	}
	utils.InfoLogger.Printf("Sukses import %d barang!", n)
}
