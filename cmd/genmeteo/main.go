// Command genmeteo generates synthetic agency CSV exports for testing the
// converter. The output follows the pre-2025 layout: a period column first,
// the reading column last, semicolon delimited, decimal comma.
//
// Usage:
//
//	go run ./cmd/genmeteo \
//	  -out testdata/chuvia.csv \
//	  -variable "Chuvia" \
//	  -start-year 2008 -years 5 \
//	  -missing 0.1 -duplicates 2 -seed 42
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output CSV path")
	variable := flag.String("variable", "Chuvia", "variable name for the reading column header")
	startYear := flag.Int("start-year", 2015, "first year to generate")
	years := flag.Int("years", 3, "number of consecutive years")
	missing := flag.Float64("missing", 0.0, "fraction of readings emitted as the -9999 sentinel")
	duplicates := flag.Int("duplicates", 0, "number of duplicated period rows to append")
	seed := flag.Int64("seed", 1, "random seed for reproducible fixtures")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *years < 1 {
		return fmt.Errorf("-years must be at least 1")
	}

	rng := rand.New(rand.NewSource(*seed))

	var b strings.Builder
	fmt.Fprintf(&b, "Fecha;%s\n", *variable)

	type row struct {
		year  int
		month time.Month
	}
	var rows []row
	for y := *startYear; y < *startYear+*years; y++ {
		for m := time.January; m <= time.December; m++ {
			rows = append(rows, row{y, m})
		}
	}

	for _, r := range rows {
		fmt.Fprintf(&b, "%04d-%02d;%s\n", r.year, int(r.month), reading(rng, *missing))
	}

	// Duplicated periods exercise the later-row-wins behavior.
	for i := 0; i < *duplicates && len(rows) > 0; i++ {
		r := rows[rng.Intn(len(rows))]
		fmt.Fprintf(&b, "%04d-%02d;%s\n", r.year, int(r.month), reading(rng, *missing))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, []byte(b.String()), 0o600); err != nil {
		return err
	}

	log.Printf("wrote %s: %d years, %d rows, %d duplicates", *out, *years, len(rows), *duplicates)
	return nil
}

// reading formats a random value with a decimal comma, or the sentinel when
// the missing fraction hits.
func reading(rng *rand.Rand, missing float64) string {
	if rng.Float64() < missing {
		return "-9999"
	}
	v := rng.Float64() * 200
	return strings.ReplaceAll(fmt.Sprintf("%.1f", v), ".", ",")
}
