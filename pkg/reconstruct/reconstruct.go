// Package reconstruct recovers structured locality records from
// whitespace-delimited bulletin lines.
//
// Field boundaries in the source PDF text are positional, not delimited:
// the locality name runs until the first single-uppercase-letter token (the
// region code), then five fuel percentages, three capacity/count fields and
// ten (price, quantity) pairs follow in fixed order. Parsing is strictly
// best-effort: a malformed line is skipped, a malformed field group is
// defaulted, a malformed price/quantity pair drops only its delivery type.
package reconstruct

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/jstrnad/ceny-tepla/models"
)

// ErrNoRegionCode is returned for lines with no single-uppercase-letter
// token after a non-empty locality name. Continuation lines that slip past
// the classifier fail this way; callers log and skip.
var ErrNoRegionCode = errors.New("no region code found")

// decimalRe is the only accepted numeric shape: digits with an optional
// single fractional part. No sign, thousands separator, comma decimal or
// exponent. Anything else is a parse failure for that field.
var decimalRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// integerRe is the count-field shape: unsigned digits only.
var integerRe = regexp.MustCompile(`^\d+$`)

// regionRe matches the region-code marker terminating a locality name.
var regionRe = regexp.MustCompile(`^[A-Z]$`)

// cursor walks the token stream of one line. Consumption is explicit so the
// fail-the-group branches can leave the stream exactly where they failed
// (the walk never re-synchronizes after a bad token).
type cursor struct {
	toks []string
	pos  int
}

func (c *cursor) exhausted() bool {
	return c.pos >= len(c.toks)
}

// decimal parses the next token against the decimal grammar. The token is
// consumed only on success.
func (c *cursor) decimal() (float64, bool) {
	if c.exhausted() || !decimalRe.MatchString(c.toks[c.pos]) {
		return 0, false
	}
	v, err := strconv.ParseFloat(c.toks[c.pos], 64)
	if err != nil {
		return 0, false
	}
	c.pos++
	return v, true
}

// integer parses the next token as a plain integer, consumed only on success.
func (c *cursor) integer() (int, bool) {
	if c.exhausted() || !integerRe.MatchString(c.toks[c.pos]) {
		return 0, false
	}
	v, err := strconv.Atoi(c.toks[c.pos])
	if err != nil {
		return 0, false
	}
	c.pos++
	return v, true
}

// take consumes and returns the next token regardless of content.
func (c *cursor) take() (string, bool) {
	if c.exhausted() {
		return "", false
	}
	t := c.toks[c.pos]
	c.pos++
	return t, true
}

// fuelGroup is the tagged outcome of the five-percentage walk. When parsed
// is false every share is zero, regardless of how many tokens parsed before
// the failure.
type fuelGroup struct {
	parsed bool
	shares models.FuelShares
}

// meterGroup is the tagged outcome of the capacity/count walk. When parsed
// is false all three values are absent.
type meterGroup struct {
	parsed      bool
	capacity    float64
	meterPoints int
	subscribers int
}

// Line reconstructs one classified bulletin line into a SourceRecord.
// It is a pure function of the line text. The returned record holds only
// delivery types whose price and quantity both parsed; a record may hold
// none and still be valid.
func Line(line string) (*models.SourceRecord, error) {
	c := &cursor{toks: strings.Fields(line)}

	// State 1+2: accumulate the locality name until the region-code marker.
	var nameParts []string
	var region string
	for {
		tok, ok := c.take()
		if !ok {
			return nil, ErrNoRegionCode
		}
		if regionRe.MatchString(tok) {
			region = tok
			break
		}
		nameParts = append(nameParts, tok)
	}
	if len(nameParts) == 0 {
		return nil, ErrNoRegionCode
	}

	rec := &models.SourceRecord{
		Locality:   strings.Join(nameParts, " "),
		RegionCode: region,
	}

	// State 3: fuel percentages, failing to zero as a group.
	if fuels := parseFuels(c); fuels.parsed {
		rec.Fuels = fuels.shares
	}

	// State 4: capacity and counts, failing to absent as a group.
	if meters := parseMeters(c); meters.parsed {
		capacity := meters.capacity
		meterPoints := meters.meterPoints
		subscribers := meters.subscribers
		rec.Capacity = &capacity
		rec.MeterPoints = &meterPoints
		rec.Subscribers = &subscribers
	}

	// State 5: one (price, quantity) pair per delivery type, each type
	// independent of the others.
	for _, dt := range models.DeliveryTypes {
		price, priceOK := c.pairField()
		quantity, quantityOK := c.pairField()
		if priceOK && quantityOK {
			rec.Deliveries = append(rec.Deliveries, models.Delivery{
				Type:     dt.Name,
				Price:    price,
				Quantity: quantity,
			})
		}
	}

	return rec, nil
}

// pairField consumes one delivery-pair token. Unlike the group walks, a
// non-numeric token is still consumed: it belonged to this delivery type's
// column, and swallowing it keeps the remaining types aligned.
func (c *cursor) pairField() (float64, bool) {
	tok, ok := c.take()
	if !ok {
		return 0, false
	}
	if !decimalRe.MatchString(tok) {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFuels walks the five percentage positions. The first failure aborts
// the group: all five shares report zero and the cursor stays on the
// failing token.
func parseFuels(c *cursor) fuelGroup {
	vals := make([]float64, 0, 5)
	for i := 0; i < 5; i++ {
		v, ok := c.decimal()
		if !ok {
			return fuelGroup{}
		}
		vals = append(vals, v)
	}
	return fuelGroup{
		parsed: true,
		shares: models.FuelShares{
			Coal:    vals[0],
			Biomass: vals[1],
			Waste:   vals[2],
			Gas:     vals[3],
			Other:   vals[4],
		},
	}
}

// parseMeters walks capacity, connection-point count and subscriber count.
// The first failure nulls the whole group, mirroring the source pipeline's
// behavior (see DESIGN.md for the parity decision), and the cursor stays on
// the failing token.
func parseMeters(c *cursor) meterGroup {
	capacity, ok := c.decimal()
	if !ok {
		return meterGroup{}
	}
	meterPoints, ok := c.integer()
	if !ok {
		return meterGroup{}
	}
	subscribers, ok := c.integer()
	if !ok {
		return meterGroup{}
	}
	return meterGroup{
		parsed:      true,
		capacity:    capacity,
		meterPoints: meterPoints,
		subscribers: subscribers,
	}
}
