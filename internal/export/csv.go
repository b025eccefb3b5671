package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

// escape wraps every value in double quotes, doubling embedded quotes. The
// legacy exports quoted unconditionally, so encoding/csv (which quotes only
// when needed) would change the byte format existing consumers parse.
func escape(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	line := make([]string, 0, len(headers))

	if _, err := io.WriteString(w, strings.Join(headers, ",")+"\n"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		line = line[:0]
		for _, v := range row {
			line = append(line, escape(v))
		}
		if _, err := io.WriteString(w, strings.Join(line, ",")+"\n"); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ProductsCSV writes the catalogue with the fixed legacy column order.
func ProductsCSV(w io.Writer, products []models.Product) error {
	headers := []string{"id", "name", "company", "cost", "price", "stock", "threshold"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID, p.Name, p.Company, num(p.Cost), num(p.Price), num(p.Stock), num(p.Threshold),
		})
	}
	return writeCSV(w, headers, rows)
}

// SalesCSV writes the ledger with the fixed legacy column order.
func SalesCSV(w io.Writer, sales []models.Sale) error {
	headers := []string{"date", "product", "customer", "qty", "total", "paid", "profit"}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date, s.ProductName, s.CustomerName, num(s.Qty), num(s.Total), s.Paid, num(s.Profit),
		})
	}
	return writeCSV(w, headers, rows)
}
