package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"fooddash/pkg/pipeline"
	"fooddash/pkg/restaurant"
)

// ValueCountLimit caps every value-count section of the profile.
const ValueCountLimit = 20

var (
	profileCategories = []restaurant.Field{
		restaurant.Country, restaurant.City, restaurant.Cuisines, restaurant.PriceType,
		restaurant.Currency, restaurant.ColorName, restaurant.RatingText,
	}
	profileNumbers = []restaurant.Field{
		restaurant.AggregateRating, restaurant.Votes, restaurant.AverageCostForTwo, restaurant.PriceRange,
	}
)

// BuildProfile renders a markdown report of one cleaning run.
func BuildProfile(rep pipeline.Report, ds restaurant.Dataset) string {
	lines := []string{
		"# Restaurant listings cleaning report",
		"",
		"## Dataset shape",
		fmt.Sprintf("- Run: `%s`", rep.RunID),
		fmt.Sprintf("- Source rows read: %s", humanize.Comma(int64(rep.SourceRows))),
		fmt.Sprintf("- Source columns: %d", len(rep.SourceCols)),
		fmt.Sprintf("- Clean rows written: %s", humanize.Comma(int64(ds.Len()))),
		fmt.Sprintf("- Columns: %d", len(restaurant.Fields)),
		"",
		"## Cleaning steps",
		"| step | rows in | rows out | dropped |",
		"|---|---:|---:|---:|",
	}
	for _, s := range rep.Steps {
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |", s.Name,
			humanize.Comma(int64(s.RowsIn)), humanize.Comma(int64(s.RowsOut)), humanize.Comma(int64(s.Dropped()))))
	}
	lines = append(lines, "")

	lines = append(lines, "## Numeric summaries")
	for _, f := range profileNumbers {
		nums := make([]float64, 0, ds.Len())
		for i := 0; i < ds.Len(); i++ {
			v, _ := ds.At(i).Number(f)
			nums = append(nums, v)
		}
		if len(nums) == 0 {
			continue
		}
		sort.Float64s(nums)
		lines = append(lines, fmt.Sprintf("- `%s`: count=%s, min=%s, median=%s, mean=%s, max=%s",
			f, humanize.Comma(int64(len(nums))), fmt4g(nums[0]), fmt4g(median(nums)), fmt4g(mean(nums)), fmt4g(nums[len(nums)-1]),
		))
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("## Value counts (top %d)", ValueCountLimit))
	for _, f := range profileCategories {
		counts := map[string]int{}
		for i := 0; i < ds.Len(); i++ {
			counts[ds.At(i).Text(f)]++
		}
		type kv struct {
			k string
			v int
		}
		items := make([]kv, 0, len(counts))
		for k, v := range counts {
			items = append(items, kv{k, v})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].v == items[j].v {
				return items[i].k < items[j].k
			}
			return items[i].v > items[j].v
		})
		if len(items) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("### `%s` (%d distinct)", f, len(items)))
		for i := 0; i < len(items) && i < ValueCountLimit; i++ {
			lines = append(lines, fmt.Sprintf("- %s: %s", items[i].k, humanize.Comma(int64(items[i].v))))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// WriteProfile writes BuildProfile's report to path.
func WriteProfile(path string, rep pipeline.Report, ds restaurant.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	return errors.Wrap(os.WriteFile(path, []byte(BuildProfile(rep, ds)), 0o644), "write profile")
}

func fmt4g(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
