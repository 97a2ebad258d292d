package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"fooddash/pkg/aggregate"
	"fooddash/pkg/restaurant"
)

// section is one titled block of command output.
type section struct {
	Title string `json:"title" yaml:"title"`
	Data  any    `json:"data" yaml:"data"`

	header []string
	rows   [][]string
}

func render(w io.Writer, format string, sections ...section) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sections)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(sections)
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s\n", s.Title)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(s.header, "\t"))
		for _, r := range s.rows {
			fmt.Fprintln(tw, strings.Join(r, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func tableSection(title string, t aggregate.Table) section {
	s := section{Title: title, Data: t}
	for _, d := range t.Dims {
		s.header = append(s.header, string(d))
	}
	s.header = append(s.header, t.Measure)
	for _, e := range t.Entries {
		s.rows = append(s.rows, append(append([]string{}, e.Key...), formatValue(e.Value)))
	}
	return s
}

var restaurantHeader = []string{"restaurant_id", "restaurant_name", "country", "city", "cuisines", "average_cost_for_two", "aggregate_rating", "votes"}

func restaurantsSection(title string, rows []restaurant.Restaurant) section {
	s := section{Title: title, Data: rows, header: restaurantHeader}
	for _, r := range rows {
		s.rows = append(s.rows, []string{
			r.Text(restaurant.RestaurantID), r.Name, r.Country, r.City, r.Cuisine,
			r.Text(restaurant.AverageCostForTwo), r.Text(restaurant.AggregateRating), r.Text(restaurant.Votes),
		})
	}
	return s
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
