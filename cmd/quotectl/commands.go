package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"warsto_quotation/internal/domain/catalog"
	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func loadCatalog(c *cli.Context) (*catalog.Catalog, error) {
	if path := c.String("catalog"); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func optionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "options",
		Usage: "List the base options of a dwelling size",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: "Dwelling size, e.g. \"2 BHK\"", Required: true},
		},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			size := strings.TrimSpace(c.String("size"))
			opts, ok := cat.Options(size)
			if !ok {
				return fmt.Errorf("unknown dwelling size %q", size)
			}
			if c.String("format") == "json" {
				return writeJSON(c.App.Writer, opts)
			}
			for _, room := range cat.RoomCategories(size) {
				fmt.Fprintf(c.App.Writer, "%s: %s\n", room, strings.Join(opts[room], ", "))
			}
			return nil
		},
	}
}

func priceCommand() *cli.Command {
	return &cli.Command{
		Name:  "price",
		Usage: "Compute a quotation for a set of selections",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "size", Aliases: []string{"s"}, Usage: "Dwelling size", Required: true},
			&cli.StringFlag{Name: "area", Aliases: []string{"a"}, Usage: "Carpet area in sq ft"},
			&cli.StringSliceFlag{Name: "select", Usage: "Room=Item, repeatable"},
			&cli.Float64Flag{Name: "rate", Usage: "Painting rate per sq ft (catalog rate when 0)", EnvVars: []string{"PAINTING_RATE_PER_SQFT"}},
		},
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			selections, err := parseSelections(c.StringSlice("select"))
			if err != nil {
				return err
			}
			engine := usecase.NewPricingEngine(cat, decimal.NewFromFloat(c.Float64("rate")))
			q, err := engine.ComputeQuotation(entities.QuotationRequest{
				DwellingSize: strings.TrimSpace(c.String("size")),
				CarpetArea:   c.String("area"),
				Selections:   selections,
			}, time.Now().UTC())
			if err != nil {
				return err
			}
			if c.String("format") == "json" {
				return writeJSON(c.App.Writer, q)
			}
			return printQuotation(c.App.Writer, q)
		},
	}
}

func catalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Summarise dwelling sizes and room categories",
		Action: func(c *cli.Context) error {
			cat, err := loadCatalog(c)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SIZE\tROOM\tITEMS\tCUSTOM")
			for _, size := range cat.DwellingSizes() {
				for _, room := range cat.RoomCategories(size) {
					items, _ := cat.RoomOptions(size, room)
					custom := "yes"
					if entities.IsImmutableRoom(room) {
						custom = "no"
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", size, room, len(items), custom)
				}
			}
			fmt.Fprintf(tw, "\nPainting rate: %s/sq ft\n", cat.PaintingRate().String())
			return tw.Flush()
		},
	}
}

// parseSelections turns repeated "Room=Item" values into a selection map,
// preserving the order items were given in.
func parseSelections(values []string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, v := range values {
		room, item, ok := strings.Cut(v, "=")
		room, item = strings.TrimSpace(room), strings.TrimSpace(item)
		if !ok || room == "" || item == "" {
			return nil, fmt.Errorf("invalid selection %q, expected Room=Item", v)
		}
		out[room] = append(out[room], item)
	}
	return out, nil
}

func printQuotation(w io.Writer, q entities.Quotation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tITEM\tSIZE\tPRICE\tDESCRIPTION")
	for _, li := range q.LineItems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", li.Room, li.ItemName, li.SizeLabel, li.Price.StringFixed(2), li.Description)
	}
	fmt.Fprintf(tw, "\nTotal\t\t\t%s\t\n", q.TotalCost.StringFixed(2))
	fmt.Fprintf(tw, "Valid until\t%s\n", q.ValidUntil.Format("02 Jan 2006"))
	return tw.Flush()
}
