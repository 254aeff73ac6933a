package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadBOM(t *testing.T) {
	path := writeFile(t, "bom.csv", `product,component,per
Alice Crib,Side Rail,2
Bench,Varnish (L),0.25
`)

	entries, err := NewLoader().LoadBOM(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Alice Crib", entries[0].Product)
	assert.Equal(t, "Side Rail", entries[0].Component)
	assert.True(t, entries[0].Per.Equal(decimal.NewFromInt(2)))
	assert.True(t, entries[1].Per.Equal(decimal.NewFromFloat(0.25)))
}

func TestLoader_LoadBOM_BadRows(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadBOM(writeFile(t, "bom.csv", "wrong,header,here\nA,B,1\n"))
	assert.ErrorContains(t, err, "header mismatch")

	_, err = loader.LoadBOM(writeFile(t, "bom2.csv", "product,component,per\nA,B,not-a-number\n"))
	assert.ErrorContains(t, err, "row 2")

	_, err = loader.LoadBOM(writeFile(t, "bom3.csv", "product,component,per\nA,B,-1\n"))
	assert.ErrorContains(t, err, "per-unit quantity must be positive")
}

func TestLoader_LoadOrders(t *testing.T) {
	path := writeFile(t, "orders.csv", `id,customer,product,qty,value,due,stage,assigned,notes,items
A,Alice,Alice Crib,2,450.00,2025-11-16,Carpentry,Ravi,rush job,Side Rail:2|Mattress Board:1
B,Bob,Oak Table,1,,,Sanding,,,
`)

	orders, err := NewLoader().LoadOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "A", string(first.ID))
	assert.Equal(t, int64(2), int64(first.Qty))
	assert.True(t, first.Value.Equal(decimal.NewFromFloat(450.00)))
	require.NotNil(t, first.Due)
	assert.Equal(t, "2025-11-16", first.Due.Format("2006-01-02"))
	assert.Equal(t, "rush job", first.Notes)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "Side Rail", first.Items[0].Name)
	assert.Equal(t, int64(2), int64(first.Items[0].Qty))

	second := orders[1]
	assert.Nil(t, second.Due)
	assert.True(t, second.Value.IsZero())
	assert.Nil(t, second.Items)
}

func TestLoader_LoadOrders_BadItems(t *testing.T) {
	path := writeFile(t, "orders.csv", `id,customer,product,qty,value,due,stage,assigned,notes,items
A,Alice,Crib,1,,,Carpentry,,,Side Rail
`)

	_, err := NewLoader().LoadOrders(path)
	assert.ErrorContains(t, err, "expected name:qty")
}

func TestLoader_LoadStages(t *testing.T) {
	path := writeFile(t, "stages.csv", "stage\nCarpentry\nSanding\nDelivered\n")

	stages, err := NewLoader().LoadStages(path)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, "Carpentry", string(stages[0]))
	assert.Equal(t, "Delivered", string(stages[2]))
}
