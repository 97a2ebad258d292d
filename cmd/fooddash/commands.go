package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fooddash/pkg/aggregate"
	"fooddash/pkg/export"
	"fooddash/pkg/metrics"
)

func newCleanCmd(a *app) *cobra.Command {
	var csvPath, sqlitePath, xlsxPath, profilePath string
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the dataset and write the exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := a.cfg.OutputDir
			if csvPath == "" {
				csvPath = filepath.Join(dir, "zomato_clean.csv")
			}
			if sqlitePath == "" {
				sqlitePath = filepath.Join(dir, "zomato_clean.sqlite")
			}
			if xlsxPath == "" {
				xlsxPath = filepath.Join(dir, "zomato_clean.xlsx")
			}
			if profilePath == "" {
				profilePath = filepath.Join(dir, "zomato_profile.md")
			}

			loaded, err := a.load()
			if err != nil {
				return err
			}
			ds := loaded.Dataset
			if err := export.WriteCSVFile(csvPath, ds); err != nil {
				return err
			}
			if err := export.WriteSQLite(sqlitePath, ds); err != nil {
				return err
			}
			if err := export.WriteXLSX(xlsxPath, ds); err != nil {
				return err
			}
			if err := export.WriteProfile(profilePath, loaded.Report, ds); err != nil {
				return err
			}
			a.log.Info("exports written", zap.String("run_id", loaded.Report.RunID), zap.String("dir", dir))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rows read: %d\n", loaded.Report.SourceRows)
			fmt.Fprintf(out, "Rows written (cleaned): %d\n", ds.Len())
			fmt.Fprintf(out, "CSV: %s\n", csvPath)
			fmt.Fprintf(out, "SQLite: %s\n", sqlitePath)
			fmt.Fprintf(out, "XLSX: %s\n", xlsxPath)
			fmt.Fprintf(out, "Profile: %s\n", profilePath)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV export path")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite export path")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "XLSX export path")
	cmd.Flags().StringVar(&profilePath, "profile", "", "markdown profile path")
	return cmd
}

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print the platform-wide metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := a.load()
			if err != nil {
				return err
			}
			sum := metrics.Summarize(loaded.Snapshot)
			s := section{Title: "Metrics", Data: sum, header: []string{"metric", "value"}}
			for _, m := range sum.Format() {
				s.rows = append(s.rows, []string{m.Label, m.Value})
			}
			return render(cmd.OutOrStdout(), a.format, s)
		},
	}
}

func newCountriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "Print the per-country tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := a.load()
			if err != nil {
				return err
			}
			sel, err := a.selection(cmd, a.cfg.TopN)
			if err != nil {
				return err
			}
			ds := loaded.Dataset.Filter(sel)
			return render(cmd.OutOrStdout(), a.format,
				tableSection("Restaurants per country", aggregate.RestaurantsByCountry(ds)),
				tableSection("Cities per country", aggregate.CitiesByCountry(ds)),
				tableSection("Mean votes per country", aggregate.MeanVotesByCountry(ds)),
				tableSection("Mean cost for two per country", aggregate.MeanCostByCountry(ds)),
			)
		},
	}
}

func newCitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "Print the per-city tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := a.load()
			if err != nil {
				return err
			}
			sel, err := a.selection(cmd, a.cfg.CityChartSize)
			if err != nil {
				return err
			}
			ds := loaded.Dataset.Filter(sel)
			n := sel.Limit
			return render(cmd.OutOrStdout(), a.format,
				tableSection("Restaurants per city", aggregate.RestaurantsByCity(ds, n)),
				tableSection(fmt.Sprintf("Restaurants rated above %.1f", aggregate.HighRating), aggregate.CitiesRatedAbove(ds, n)),
				tableSection(fmt.Sprintf("Restaurants rated below %.1f", aggregate.LowRating), aggregate.CitiesRatedBelow(ds, n)),
				tableSection("Cuisines per city", aggregate.CuisinesByCity(ds, n)),
			)
		},
	}
}

func newCuisinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cuisines",
		Short: "Print the per-cuisine tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := a.load()
			if err != nil {
				return err
			}
			sel, err := a.selection(cmd, a.cfg.TopN)
			if err != nil {
				return err
			}

			featured, err := aggregate.FeaturedBest(loaded.Snapshot, a.cfg.FeaturedCuisines)
			if err != nil {
				return err
			}
			best := section{Title: "Best restaurant per featured cuisine", Data: featured,
				header: []string{"cuisine", "restaurant_name", "country", "aggregate_rating", "votes"}}
			for _, f := range featured {
				if !f.Found {
					best.rows = append(best.rows, []string{f.Cuisine, "-", "-", "-", "-"})
					continue
				}
				r := f.Restaurant
				best.rows = append(best.rows, []string{f.Cuisine, r.Name, r.Country, formatValue(r.AggregateRating), fmt.Sprint(r.Votes)})
			}

			ds := loaded.Dataset.Filter(sel)
			top, err := aggregate.TopRated(ds, sel.Limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format,
				best,
				restaurantsSection("Top restaurants", top),
				tableSection("Best cuisines", aggregate.BestCuisines(ds, sel.Limit)),
				tableSection("Worst cuisines", aggregate.WorstCuisines(ds, sel.Limit)),
			)
		},
	}
}

func newTopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Print the best rated restaurants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := a.load()
			if err != nil {
				return err
			}
			sel, err := a.selection(cmd, a.cfg.TopN)
			if err != nil {
				return err
			}
			top, err := aggregate.TopRated(loaded.Dataset.Filter(sel), sel.Limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.format, restaurantsSection("Top restaurants", top))
		},
	}
}

func newMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Print one map marker per restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := a.load()
			if err != nil {
				return err
			}
			sel, err := a.selection(cmd, a.cfg.TopN)
			if err != nil {
				return err
			}
			pts := aggregate.MapPoints(loaded.Dataset.Filter(sel))
			s := section{Title: "Map", Data: pts,
				header: []string{"latitude", "longitude", "restaurant_name", "cost_for_two", "cuisines", "aggregate_rating", "color_name"}}
			for _, p := range pts {
				s.rows = append(s.rows, []string{
					fmt.Sprint(p.Latitude), fmt.Sprint(p.Longitude), p.Name,
					fmt.Sprintf("%d %s", p.AverageCostForTwo, p.Currency), p.Cuisine,
					formatValue(p.AggregateRating), p.ColorName,
				})
			}
			return render(cmd.OutOrStdout(), a.format, s)
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <reference.csv> <candidate.csv>",
		Short: "Compare two semicolon exports on restaurant_id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := export.CompareFiles(args[0], args[1])
			if err != nil {
				return err
			}
			a.log.Debug("compared exports", zap.String("status", cmp.Status), zap.Float64("overall", cmp.Overall))
			s := section{Title: "Comparison", Data: cmp, header: []string{"column", "matched", "similarity", "mismatches"}}
			s.rows = append(s.rows,
				[]string{"status", cmp.Status, "", ""},
				[]string{"coverage", "", fmt.Sprintf("%.6f / %.6f", cmp.Alignment.CoverageReference, cmp.Alignment.CoverageCandidate), ""},
				[]string{"overall", "", fmt.Sprintf("%.6f", cmp.Overall), ""},
			)
			for _, c := range cmp.Columns {
				s.rows = append(s.rows, []string{c.Column, fmt.Sprint(c.Matched), fmt.Sprintf("%.6f", c.Similarity), fmt.Sprint(c.Mismatches)})
			}
			return render(cmd.OutOrStdout(), a.format, s)
		},
	}
}
