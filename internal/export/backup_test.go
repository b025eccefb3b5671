package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

func TestBackupDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	ledger := models.Ledger{
		Products:  []models.Product{{ID: "p1", Name: "Kazi Grower", Company: "Kazi", Cost: 30, Price: 38, Stock: 150, Threshold: 20}},
		Customers: []models.Customer{{ID: "c1", Name: "Rahim", Phone: "01710000000", Due: 200}},
		Sales:     []models.Sale{{ID: "s1", Date: "2024-01-05", ProductID: "p1", ProductName: "Kazi Grower", Qty: 5, Total: 190, CustomerName: models.WalkInName, Paid: models.PaymentPaid, Profit: 40}},
		Users:     []models.User{{Email: "owner@shop", PasswordHash: "hash", Role: models.RoleOwner}},
		Settings:  models.Settings{ShopName: "Feed Shop", LowThreshold: 10},
	}

	doc := NewDocument(ledger)
	assert.NotEmpty(t, doc.ExportedAt)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	parsed, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)

	// Imports carry the collections but never the shop configuration.
	got := parsed.Ledger()
	assert.Equal(t, ledger.Products, got.Products)
	assert.Equal(t, ledger.Customers, got.Customers)
	assert.Equal(t, ledger.Sales, got.Sales)
	assert.Equal(t, ledger.Users, got.Users)
	assert.Equal(t, models.Settings{}, got.Settings)
}

func TestBackupDocument_LegacyFieldNames(t *testing.T) {
	t.Parallel()

	// Files produced by older installs use these exact keys.
	raw := []byte(`{
		"products": [{"id": "p1", "name": "Feed", "company": "Kazi", "cost": 30, "price": 38, "stock": 10, "threshold": 5}],
		"customers": [{"id": "c1", "name": "Rahim", "phone": "017", "due": 50}],
		"sales": [{"id": "s1", "date": "2024-01-05", "productId": "p1", "productName": "Feed", "qty": 1, "total": 38, "customerId": "c1", "customerName": "Rahim", "paid": "due", "profit": 8}],
		"users": [{"email": "owner@shop", "pass": "abc", "role": "owner"}],
		"settings": {"shopName": "Shop", "shopLogo": "", "lowThreshold": 10}
	}`)

	doc, err := ParseDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "p1", doc.Products[0].ID)
	assert.Equal(t, 5.0, doc.Products[0].Threshold)
	assert.Equal(t, 50.0, doc.Customers[0].Due)
	assert.Equal(t, "p1", doc.Sales[0].ProductID)
	assert.Equal(t, "abc", doc.Users[0].PasswordHash)
	assert.Equal(t, 10.0, doc.Settings.LowThreshold)
}

func TestParseDocument_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte("not json at all"))
	assert.Error(t, err)
}

func TestSampleDocument(t *testing.T) {
	t.Parallel()

	doc := SampleDocument(models.Settings{ShopName: "My Shop", LowThreshold: 7})

	require.Len(t, doc.Products, 1)
	require.Len(t, doc.Customers, 1)
	assert.NotNil(t, doc.Sales)
	assert.Equal(t, "My Shop", doc.Settings.ShopName)
	// The template never leaks a real credential.
	assert.Empty(t, doc.Users[0].PasswordHash)
}

func TestReportXLSX(t *testing.T) {
	t.Parallel()

	rows := []models.Sale{
		{Date: "2024-01-05", ProductName: "Kazi Grower", Qty: 5, Total: 190, Profit: 40},
		{Date: "2024-01-05", ProductName: "Nahar Starter", Qty: 2, Total: 70, Profit: 14},
	}

	var buf bytes.Buffer
	require.NoError(t, ReportXLSX(&buf, "Daily-2024-01-05", rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Daily-2024-01-05"}, f.GetSheetList())

	got, err := f.GetRows("Daily-2024-01-05")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Date", "Product", "Qty", "Total", "Profit"}, got[0])
	assert.Equal(t, []string{"2024-01-05", "Kazi Grower", "5", "190", "40"}, got[1])
	assert.Equal(t, []string{"2024-01-05", "Nahar Starter", "2", "70", "14"}, got[2])
}
