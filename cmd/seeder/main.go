package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/monicodev/orbidi-challenge/internal/config"
	"github.com/monicodev/orbidi-challenge/internal/models"

	"github.com/jackc/pgx/v5"
)

// Bulk-loads businesses from a CSV file with columns:
// id,name,iae_code,rentability,proximity_to_urban_center_m,latitude,longitude

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	err = insertRecords(conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	err = verifyImport(conn, len(records))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

func parseCSV(filePath string) ([]models.Business, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.Business
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 7 {
			return nil, fmt.Errorf("invalid record length: %d, expected 7 columns", len(record))
		}

		rentability, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rentability: %s", record[3])
		}

		proximity, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid proximity: %s", record[4])
		}

		lat, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[5])
		}

		lon, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[6])
		}

		records = append(records, models.Business{
			ID:                      record[0],
			Name:                    record[1],
			IAECode:                 record[2],
			Rentability:             rentability,
			ProximityToUrbanCenterM: proximity,
			Latitude:                lat,
			Longitude:               lon,
		})
	}

	return records, nil
}

func insertRecords(conn *pgx.Conn, records []models.Business) error {
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"businesses"},
		[]string{"id", "name", "iae_code", "rentability", "proximity_to_urban_center_m", "latitude", "longitude"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			b := records[i]
			return []interface{}{b.ID, b.Name, b.IAECode, b.Rentability, b.ProximityToUrbanCenterM, b.Latitude, b.Longitude}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM businesses").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	return nil
}
