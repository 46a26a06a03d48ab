package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"quotectl"}, args...))
	return out.String(), err
}

func TestPriceCommand_JSON(t *testing.T) {
	out, err := run(t, "--format", "json", "price", "--size", "1 BHK", "--area", "500", "--select", "LivingRoom=TV Unit")
	require.NoError(t, err)

	var q struct {
		TotalCost string `json:"total_cost"`
		LineItems []struct {
			Room string `json:"room"`
		} `json:"line_items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &q))
	assert.Equal(t, "137250", q.TotalCost)
	assert.Len(t, q.LineItems, 2)
}

func TestPriceCommand_Table(t *testing.T) {
	out, err := run(t, "price", "--size", "2 BHK", "--select", "LivingRoom=Bar Counter")
	require.NoError(t, err)
	assert.Contains(t, out, "Bar Counter")
	assert.Contains(t, out, "0.00")
}

func TestPriceCommand_InvalidSelection(t *testing.T) {
	_, err := run(t, "price", "--size", "1 BHK", "--select", "LivingRoom")
	assert.ErrorContains(t, err, "expected Room=Item")
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options", "--size", "1 BHK")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "LivingRoom: "), out)

	_, err = run(t, "options", "--size", "6 BHK")
	assert.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "Painting rate: 55/sq ft")
}

func TestParseSelections(t *testing.T) {
	got, err := parseSelections([]string{"LivingRoom=TV Unit", " LivingRoom = Sofa ", "Kitchen=L Shape"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"LivingRoom": {"TV Unit", "Sofa"},
		"Kitchen":    {"L Shape"},
	}, got)
}
