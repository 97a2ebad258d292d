package restaurant

import (
	"github.com/pkg/errors"

	"fooddash/pkg/frame"
)

// FromFrame decodes a frame holding the canonical columns into a dataset.
// Extra columns are ignored; a missing canonical column or a cell that does
// not parse is an error.
func FromFrame(f *frame.Frame) (Dataset, error) {
	idx := make(map[Field]int, len(Fields))
	for _, fd := range Fields {
		i := f.Index(string(fd))
		if i < 0 {
			return Dataset{}, errors.Errorf("decode: missing column %q", fd)
		}
		idx[fd] = i
	}

	rows := make([]Restaurant, 0, f.Len())
	for n := range f.Rows {
		r, err := decodeRow(f, n, idx)
		if err != nil {
			return Dataset{}, errors.Wrap(err, "decode")
		}
		rows = append(rows, r)
	}
	return Dataset{rows: rows}, nil
}

func decodeRow(f *frame.Frame, n int, idx map[Field]int) (Restaurant, error) {
	cell := func(fd Field) string { return f.Rows[n][idx[fd]] }
	r := Restaurant{
		Name:            cell(RestaurantName),
		Country:         cell(Country),
		City:            cell(City),
		Address:         cell(Address),
		Locality:        cell(Locality),
		LocalityVerbose: cell(LocalityVerbose),
		Cuisine:         cell(Cuisines),
		PriceType:       cell(PriceType),
		Currency:        cell(Currency),
		RatingColor:     cell(RatingColor),
		ColorName:       cell(ColorName),
		RatingText:      cell(RatingText),
	}

	var err error
	ints := []struct {
		fd  Field
		dst *int64
	}{
		{RestaurantID, &r.ID},
		{PriceRange, &r.PriceRange},
		{AverageCostForTwo, &r.AverageCostForTwo},
		{Votes, &r.Votes},
	}
	for _, c := range ints {
		if *c.dst, err = f.Int(n, idx[c.fd]); err != nil {
			return Restaurant{}, err
		}
	}

	floats := []struct {
		fd  Field
		dst *float64
	}{
		{Longitude, &r.Longitude},
		{Latitude, &r.Latitude},
		{AggregateRating, &r.AggregateRating},
	}
	for _, c := range floats {
		if *c.dst, err = f.Float(n, idx[c.fd]); err != nil {
			return Restaurant{}, err
		}
	}

	flags := []struct {
		fd  Field
		dst *bool
	}{
		{HasTableBooking, &r.HasTableBooking},
		{HasOnlineDelivery, &r.HasOnlineDelivery},
		{IsDeliveringNow, &r.IsDeliveringNow},
	}
	for _, c := range flags {
		if *c.dst, err = f.Bool(n, idx[c.fd]); err != nil {
			return Restaurant{}, err
		}
	}
	return r, nil
}
