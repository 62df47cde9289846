//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package tables holds the flat tabular form of generated data and its
// delimited-text encoding.
package tables

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5/pgtype"
)

// Timestamp and date layouts used in every output file.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Table is a named set of rows sharing one column list. Row values keep
// their Go types so the same rows feed both CSV files and PostgreSQL COPY.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// SQLColumns returns the snake_case database column names.
func (t Table) SQLColumns() []string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = SQLName(c)
	}
	return cols
}

// Records renders every row as text.
func (t Table) Records() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = FormatValue(v)
		}
		out[i] = rec
	}
	return out
}

// FormatValue renders one cell. Nil pointers and invalid nullable values
// become empty fields.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case *int64:
		if x == nil {
			return ""
		}
		return strconv.FormatInt(*x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(TimestampLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.UTC().Format(TimestampLayout)
	case pgtype.Date:
		if !x.Valid {
			return ""
		}
		return x.Time.Format(DateLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// SQLName converts a header such as "RestaurantID" or "Pricing_for_2" into
// a snake_case column name ("restaurant_id", "pricing_for_2").
func SQLName(header string) string {
	runes := []rune(header)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prev != '_' && (unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && nextLower)) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
