package vnstock

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
)

// Listing fetches the full symbol roster. The listing file is CSV; header
// names vary between published revisions, so columns are resolved by a small
// set of known aliases.
func (c *Client) Listing(ctx context.Context) ([]Company, error) {
	body, err := c.get(ctx, c.listingURL)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	companies, err := parseListingCSV(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}
	return companies, nil
}

func parseListingCSV(r *bytes.Reader) ([]Company, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	column := func(aliases ...string) int {
		for _, alias := range aliases {
			if i, ok := index[alias]; ok {
				return i
			}
		}
		return -1
	}

	symbolCol := column("ticker", "symbol")
	nameCol := column("organname", "companyname", "organshortname", "company_name")
	exchangeCol := column("comgroupcode", "exchange", "group")
	industryCol := column("icbname", "industryname", "industry")
	if symbolCol < 0 {
		return nil, fmt.Errorf("listing has no symbol column")
	}

	field := func(record []string, col int) string {
		if col < 0 || col >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[col])
	}

	companies := make([]Company, 0)
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}
		symbol := strings.ToUpper(field(record, symbolCol))
		if symbol == "" {
			continue
		}
		companies = append(companies, Company{
			Symbol:   symbol,
			Name:     field(record, nameCol),
			Exchange: strings.ToUpper(field(record, exchangeCol)),
			Industry: field(record, industryCol),
		})
	}
	return companies, nil
}
