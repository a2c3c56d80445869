package penguins

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"penguins.dashboard/internal/logging"
)

// DefaultSource is the upstream CSV published with the palmerpenguins package.
const DefaultSource = "https://raw.githubusercontent.com/allisonhorst/palmerpenguins/main/inst/extdata/penguins.csv"

const missingValue = "NA"

var requiredColumns = []string{"species", "island", "bill_length_mm", "bill_depth_mm", "body_mass_g"}

// IsRemoteSource reports whether source should be fetched over HTTP rather
// than read from the local filesystem.
func IsRemoteSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads the dataset once from a local CSV file or an http(s) URL.
func Load(ctx context.Context, source string) (*Dataset, error) {
	b, err := rawDataset(ctx, source)
	if err != nil {
		return nil, err
	}

	rows, err := ParseCSV(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("error parsing penguin data from %s: %w", source, err)
	}

	return newDataset(rows, source, time.Now()), nil
}

func rawDataset(ctx context.Context, source string) ([]byte, error) {
	if !IsRemoteSource(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local penguin data: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building penguin data request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading penguin data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logging.FromContext(ctx), "penguin_data_download")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("error downloading penguin data: unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading penguin data: %w", err)
	}
	return b, nil
}

// ParseCSV parses the palmerpenguins CSV layout. Columns are located by
// header name; unknown columns such as "rowid" are ignored.
func ParseCSV(r io.Reader) ([]Observation, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty penguin data")
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return missingValue
		}
		return strings.TrimSpace(row[i])
	}

	var rows []Observation
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		species, err := ParseSpecies(field(record, "species"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		obs := Observation{
			Species: species,
			Island:  field(record, "island"),
			Sex:     field(record, "sex"),
		}
		if obs.Sex == missingValue {
			obs.Sex = ""
		}

		measures := []struct {
			column string
			dest   *float64
		}{
			{"bill_length_mm", &obs.BillLengthMM},
			{"bill_depth_mm", &obs.BillDepthMM},
			{"flipper_length_mm", &obs.FlipperLengthMM},
			{"body_mass_g", &obs.BodyMassG},
		}
		for _, m := range measures {
			v, err := parseMeasure(field(record, m.column))
			if err != nil {
				return nil, fmt.Errorf("line %d: column %s: %w", line, m.column, err)
			}
			*m.dest = v
		}

		if year := field(record, "year"); year != missingValue && year != "" {
			obs.Year, err = strconv.Atoi(year)
			if err != nil {
				return nil, fmt.Errorf("line %d: column year: %w", line, err)
			}
		}

		rows = append(rows, obs)
	}

	return rows, nil
}

func parseMeasure(raw string) (float64, error) {
	if raw == "" || raw == missingValue {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("measurement must be positive, got %v", v)
	}
	return v, nil
}
