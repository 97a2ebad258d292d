package export

import (
	"math"
	"math/big"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// Comparison statuses.
const (
	StatusOK      = "ok"
	StatusPartial = "partial_key_match"
	StatusNoMatch = "no_key_match"
)

var reNumeric = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)$`)

// Alignment describes how candidate rows were paired with reference rows.
type Alignment struct {
	Complete                  bool    `json:"complete" yaml:"complete"`
	Key                       string  `json:"key" yaml:"key"`
	MatchedRows               int     `json:"matched_rows" yaml:"matched_rows"`
	ReferenceRows             int     `json:"reference_rows" yaml:"reference_rows"`
	CandidateRows             int     `json:"candidate_rows" yaml:"candidate_rows"`
	CoverageReference         float64 `json:"coverage_reference" yaml:"coverage_reference"`
	CoverageCandidate         float64 `json:"coverage_candidate" yaml:"coverage_candidate"`
	DuplicateReferenceKeys    int     `json:"duplicate_reference_keys,omitempty" yaml:"duplicate_reference_keys,omitempty"`
	DuplicateCandidateMatches int     `json:"duplicate_candidate_matches,omitempty" yaml:"duplicate_candidate_matches,omitempty"`
	UnmatchedCandidateRows    int     `json:"unmatched_candidate_rows,omitempty" yaml:"unmatched_candidate_rows,omitempty"`

	pairs [][2]int
}

// ColumnScore is the mean value similarity of one reference column.
type ColumnScore struct {
	Column     string  `json:"column" yaml:"column"`
	Matched    bool    `json:"matched" yaml:"matched"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
	Mismatches int     `json:"mismatches" yaml:"mismatches"`
}

// Comparison reports how closely a candidate export reproduces a reference.
type Comparison struct {
	Status     string        `json:"status" yaml:"status"`
	Alignment  Alignment     `json:"alignment" yaml:"alignment"`
	Columns    []ColumnScore `json:"columns" yaml:"columns"`
	Similarity float64       `json:"similarity" yaml:"similarity"`
	Overall    float64       `json:"overall_with_coverage" yaml:"overall_with_coverage"`
}

// Compare aligns two frames on key and scores every reference column.
// Numbers are compared by value, so "4.0" matches "4".
func Compare(ref, cand *frame.Frame, key string) (Comparison, error) {
	ri, ci := ref.Index(key), cand.Index(key)
	if ri < 0 {
		return Comparison{}, errors.Errorf("compare: reference has no %q column", key)
	}
	if ci < 0 {
		return Comparison{}, errors.Errorf("compare: candidate has no %q column", key)
	}

	al := align(ref, cand, ri, ci)
	al.Key = key
	if al.MatchedRows == 0 {
		return Comparison{Status: StatusNoMatch, Alignment: al}, nil
	}

	cmp := Comparison{Status: StatusPartial, Alignment: al}
	if al.Complete {
		cmp.Status = StatusOK
	}
	total := 0.0
	for refIdx, col := range ref.Columns {
		candIdx := cand.Index(col)
		if candIdx < 0 {
			cmp.Columns = append(cmp.Columns, ColumnScore{Column: col})
			continue
		}
		sc := ColumnScore{Column: col, Matched: true}
		sum := 0.0
		for _, p := range al.pairs {
			s := valueSimilarity(ref.Rows[p[0]][refIdx], cand.Rows[p[1]][candIdx])
			if s < 1 {
				sc.Mismatches++
			}
			sum += s
		}
		sc.Similarity = sum / float64(len(al.pairs))
		total += sc.Similarity
		cmp.Columns = append(cmp.Columns, sc)
	}
	cmp.Similarity = safeDiv(total, float64(len(ref.Columns)))
	cmp.Overall = cmp.Similarity * al.CoverageReference
	return cmp, nil
}

// CompareFiles compares two semicolon exports on restaurant_id.
func CompareFiles(referencePath, candidatePath string) (Comparison, error) {
	ref, err := ReadCSVFile(referencePath)
	if err != nil {
		return Comparison{}, errors.Wrap(err, "read reference")
	}
	cand, err := ReadCSVFile(candidatePath)
	if err != nil {
		return Comparison{}, errors.Wrap(err, "read candidate")
	}
	return Compare(ref, cand, string(restaurant.RestaurantID))
}

func align(ref, cand *frame.Frame, ri, ci int) Alignment {
	refIndex := make(map[string]int, ref.Len())
	dupRef := 0
	for i, row := range ref.Rows {
		k := canonicalScalar(row[ri])
		if k == "" {
			continue
		}
		if _, exists := refIndex[k]; exists {
			dupRef++
			continue
		}
		refIndex[k] = i
	}
	pairs := make([][2]int, 0, cand.Len())
	seenRef := make(map[int]struct{}, cand.Len())
	missing, dupCand := 0, 0
	for i, row := range cand.Rows {
		r, ok := refIndex[canonicalScalar(row[ci])]
		if !ok {
			missing++
			continue
		}
		if _, exists := seenRef[r]; exists {
			dupCand++
			continue
		}
		seenRef[r] = struct{}{}
		pairs = append(pairs, [2]int{r, i})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	matched := len(pairs)
	return Alignment{
		Complete:                  dupRef == 0 && dupCand == 0 && missing == 0 && matched == ref.Len() && matched == cand.Len(),
		MatchedRows:               matched,
		ReferenceRows:             ref.Len(),
		CandidateRows:             cand.Len(),
		CoverageReference:         safeDiv(float64(matched), float64(ref.Len())),
		CoverageCandidate:         safeDiv(float64(matched), float64(cand.Len())),
		DuplicateReferenceKeys:    dupRef,
		DuplicateCandidateMatches: dupCand,
		UnmatchedCandidateRows:    missing,
		pairs:                     pairs,
	}
}

func valueSimilarity(a, b string) float64 {
	an, bn := strings.TrimSpace(a), strings.TrimSpace(b)
	if an == bn {
		return 1
	}
	if an == "" || bn == "" {
		return 0
	}
	ad, aok := parseDecimal(an)
	bd, bok := parseDecimal(bn)
	if aok && bok {
		if ad.Cmp(bd) == 0 {
			return 1
		}
		af, _ := ad.Float64()
		bf, _ := bd.Float64()
		denom := math.Max(math.Max(math.Abs(af), math.Abs(bf)), 1)
		return math.Max(0, 1-math.Abs(af-bf)/denom)
	}
	return levenshteinSimilarity(an, bn)
}

func parseDecimal(s string) (*big.Rat, bool) {
	if !reNumeric.MatchString(s) {
		return nil, false
	}
	return new(big.Rat).SetString(s)
}

func canonicalScalar(v string) string {
	s := strings.TrimSpace(v)
	if r, ok := parseDecimal(s); ok {
		return r.RatString()
	}
	return s
}

func levenshteinSimilarity(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	denom := len(ar)
	if len(br) > denom {
		denom = len(br)
	}
	if denom == 0 {
		return 1
	}
	return math.Max(0, 1-float64(levenshtein(ar, br))/float64(denom))
}

func levenshtein(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ca := range a {
		curr := make([]int, len(b)+1)
		curr[0] = i + 1
		for j, cb := range b {
			sub := prev[j]
			if ca != cb {
				sub++
			}
			curr[j+1] = minInt(curr[j]+1, prev[j+1]+1, sub)
		}
		prev = curr
	}
	return prev[len(b)]
}

func minInt(first int, rest ...int) int {
	for _, v := range rest {
		if v < first {
			first = v
		}
	}
	return first
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
