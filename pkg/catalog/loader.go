package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gardenbook/entities"
)

// LoadFromFiles reads plant catalog rows from a CSV file, an XLSX workbook,
// or both. Either path may be empty.
func LoadFromFiles(csvPath, xlsxPath string) ([]entities.Plant, error) {
	var out []entities.Plant
	if csvPath != "" {
		ps, err := LoadCSV(csvPath)
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	if xlsxPath != "" {
		ps, err := LoadXLSX(xlsxPath)
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	return out, nil
}

func LoadCSV(path string) ([]entities.Plant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

func ReadCSV(r io.Reader) ([]entities.Plant, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("catalog csv header: %w", err)
	}
	cols, err := newColumns(head)
	if err != nil {
		return nil, err
	}
	var out []entities.Plant
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if p, ok := cols.plant(rec); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// LoadXLSX reads the first sheet of the workbook at path.
func LoadXLSX(path string) ([]entities.Plant, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	cols, err := newColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var out []entities.Plant
	for _, rec := range rows[1:] {
		if p, ok := cols.plant(rec); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type columns struct {
	common, scientific, family, days, spacing int
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func newColumns(head []string) (columns, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	c := columns{
		common:     findAny("common_name", "name", "plant"),
		scientific: findAny("scientific_name", "latin", "botanical_name"),
		family:     findAny("family"),
		days:       findAny("days_to_maturity", "maturity_days", "dtm"),
		spacing:    findAny("spacing_cm", "spacing"),
	}
	if c.common == -1 {
		return c, fmt.Errorf("catalog missing a common_name column, found headers: %v", head)
	}
	return c, nil
}

func (c columns) plant(rec []string) (entities.Plant, bool) {
	get := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	p := entities.Plant{
		CommonName:     get(c.common),
		ScientificName: get(c.scientific),
		Family:         get(c.family),
	}
	if p.CommonName == "" {
		return p, false
	}
	if v, err := strconv.Atoi(get(c.days)); err == nil && v > 0 {
		p.DaysToMaturity = &v
	}
	if v, err := strconv.ParseFloat(get(c.spacing), 64); err == nil && v > 0 {
		p.SpacingCM = &v
	}
	return p, true
}
