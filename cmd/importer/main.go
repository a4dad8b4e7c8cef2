package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"postcode-api/internal/config"
	"postcode-api/internal/repository"
)

// importFile is a parsed lookup export: lowercased header columns plus one
// row per record, with the postcode field already normalized.
type importFile struct {
	columns     []string
	postcodeCol int
	rows        [][]string
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	backend := flag.String("backend", "", "Target backend: postgres or redis (default from config)")
	table := flag.String("table", "", "Target table for the postgres backend (default from config)")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	data, err := parseFile(*file)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(data.rows))

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *backend == "" {
		*backend = cfg.LookupBackend
	}
	if *table == "" {
		*table = cfg.LookupTable
	}

	switch *backend {
	case "postgres":
		err = importPostgres(cfg, *table, data)
	case "redis":
		err = importRedis(cfg, data)
	case "csv":
		err = fmt.Errorf("the csv backend reads its file directly; nothing to import")
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		fmt.Printf("Error importing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records to %s\n", len(data.rows), *backend)
}

func parseFile(filePath string) (*importFile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	postcodeCol := -1
	for i, col := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
		if columns[i] == "postcode" {
			postcodeCol = i
		}
	}
	if postcodeCol == -1 {
		return nil, fmt.Errorf("header has no postcode column")
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		// Keys are looked up uppercased, so store them that way.
		record[postcodeCol] = strings.ToUpper(strings.TrimSpace(record[postcodeCol]))
		rows = append(rows, record)
	}

	return &importFile{columns: columns, postcodeCol: postcodeCol, rows: rows}, nil
}

func importPostgres(cfg config.Config, table string, data *importFile) error {
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	var existing *string
	err = conn.QueryRow(ctx, "SELECT to_regclass($1)::text", table).Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed to check for existing table: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("table %q already exists; refusing to overwrite", table)
	}

	if err := createTable(ctx, conn, table, data.columns); err != nil {
		return err
	}

	if err := insertRows(ctx, conn, table, data); err != nil {
		return err
	}

	return verifyImport(ctx, conn, table, len(data.rows))
}

// createTable builds the lookup table from the file's header: every column
// is text, with postcode as the primary key.
func createTable(ctx context.Context, conn *pgx.Conn, table string, columns []string) error {
	defs := make([]string, len(columns))
	for i, col := range columns {
		def := pgx.Identifier{col}.Sanitize() + " TEXT"
		if col == "postcode" {
			def += " PRIMARY KEY"
		}
		defs[i] = def
	}

	query := fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{table}.Sanitize(), strings.Join(defs, ", "))
	if _, err := conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func insertRows(ctx context.Context, conn *pgx.Conn, table string, data *importFile) error {
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{table},
		data.columns,
		pgx.CopyFromSlice(len(data.rows), func(i int) ([]interface{}, error) {
			row := data.rows[i]
			values := make([]interface{}, len(row))
			for j, v := range row {
				values[j] = v
			}
			return values, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy records: %w", err)
	}
	return nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, table string, expected int) error {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pgx.Identifier{table}.Sanitize())
	if err := conn.QueryRow(ctx, query).Scan(&count); err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expected {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expected, count)
	}
	return nil
}

func importRedis(cfg config.Config, data *importFile) error {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	exists, err := client.Exists(ctx, repository.GeoSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check for existing geo set: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("geo set %q already exists; refusing to overwrite", repository.GeoSetKey)
	}

	latCol := columnIndex(data.columns, "latitude")
	lonCol := columnIndex(data.columns, "longitude")
	if latCol < 0 || lonCol < 0 {
		return fmt.Errorf("the redis backend requires latitude and longitude columns")
	}

	pipe := client.Pipeline()
	for _, row := range data.rows {
		lat, err := strconv.ParseFloat(row[latCol], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude for %q: %w", row[data.postcodeCol], err)
		}
		lon, err := strconv.ParseFloat(row[lonCol], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude for %q: %w", row[data.postcodeCol], err)
		}

		pipe.GeoAdd(ctx, repository.GeoSetKey, &redis.GeoLocation{
			Name:      row[data.postcodeCol],
			Latitude:  lat,
			Longitude: lon,
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add geo positions: %w", err)
	}

	count, err := client.ZCard(ctx, repository.GeoSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to count geo set members: %w", err)
	}
	if int(count) != len(data.rows) {
		return fmt.Errorf("record count mismatch: expected %d, got %d", len(data.rows), count)
	}
	return nil
}

func columnIndex(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}
