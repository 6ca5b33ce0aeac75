// Package message reads polynomial records and writes one rendered line per
// record in the form "Message #<n>: <polynomial>".
package message

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Davincible/gfpoly/pkg/gf256"
)

// Record is one parsed input line: the reducing polynomial followed by the
// coefficients, lowest degree first.
type Record struct {
	ReducingPolynomial int
	Coefficients       []int
}

// ParseRecord parses "<count> <reducing_polynomial> <coefficient>*count".
// Tokens past the declared count are ignored. A record with fewer than count
// coefficients is rejected rather than rendered from the tokens present.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("record needs a count and a reducing polynomial, got %d fields", len(fields))
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return Record{}, fmt.Errorf("invalid coefficient count %q", fields[0])
	}

	poly, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("invalid reducing polynomial %q", fields[1])
	}

	rest := fields[2:]
	if len(rest) < count {
		return Record{}, fmt.Errorf("record declares %d coefficients but has %d", count, len(rest))
	}

	coefs := make([]int, count)
	for i, tok := range rest[:count] {
		c, err := strconv.Atoi(tok)
		if err != nil {
			return Record{}, fmt.Errorf("invalid coefficient %d %q", i, tok)
		}
		coefs[i] = c
	}

	return Record{ReducingPolynomial: poly, Coefficients: coefs}, nil
}

// Poly builds the record's polynomial, taking the field from cache.
func (r Record) Poly(cache *gf256.Cache) (*gf256.Poly, error) {
	f, err := cache.Get(r.ReducingPolynomial)
	if err != nil {
		return nil, err
	}
	return gf256.NewPoly(r.Coefficients, f)
}

// Processor renders batches of records. Fields are shared across records
// through Cache.
type Processor struct {
	Cache  *gf256.Cache
	Logger *slog.Logger
}

// NewProcessor returns a Processor with an empty cache and the default logger.
func NewProcessor() *Processor {
	return &Processor{
		Cache:  &gf256.Cache{},
		Logger: slog.Default(),
	}
}

// Process reads the record count from the first non-blank line of r, then
// that many records, and writes one line to w per record. It returns the
// number of lines written. Processing stops at the first invalid record.
func (p *Processor) Process(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	next := func() (string, bool) {
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read record count: %w", err)
		}
		return 0, fmt.Errorf("missing record count")
	}

	total, err := strconv.Atoi(header)
	if err != nil || total < 0 {
		return 0, fmt.Errorf("invalid record count %q", header)
	}
	p.logger().Debug("processing records", "count", total)

	bw := bufio.NewWriter(w)
	written := 0
	for n := 1; n <= total; n++ {
		line, ok := next()
		if !ok {
			break
		}

		out, err := p.render(line)
		if err != nil {
			if ferr := bw.Flush(); ferr != nil {
				return written, fmt.Errorf("failed to write output: %w", ferr)
			}
			return written, fmt.Errorf("record %d: %w", n, err)
		}

		if _, err := fmt.Fprintf(bw, "Message #%d: %s\n", n, out); err != nil {
			return written, fmt.Errorf("failed to write output: %w", err)
		}
		written++
		p.logger().Debug("rendered record", "index", n, "output", out)
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to write output: %w", err)
	}
	if err := scanner.Err(); err != nil {
		return written, fmt.Errorf("failed to read records: %w", err)
	}
	if written < total {
		return written, fmt.Errorf("expected %d records, got %d", total, written)
	}

	return written, nil
}

func (p *Processor) render(line string) (string, error) {
	rec, err := ParseRecord(line)
	if err != nil {
		return "", err
	}
	poly, err := rec.Poly(p.cache())
	if err != nil {
		return "", err
	}
	return poly.Render()
}

func (p *Processor) cache() *gf256.Cache {
	if p.Cache == nil {
		p.Cache = &gf256.Cache{}
	}
	return p.Cache
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
