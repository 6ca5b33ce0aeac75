package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	coefListPattern = regexp.MustCompile(`^\s*-?\d+(\s*[,\s]\s*-?\d+)*\s*$`)
	hexPolyPattern  = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

func ValidateReducingPolynomial(poly int) error {
	if poly < 256 || poly > 511 {
		return fmt.Errorf("reducing polynomial must be between 256 and 511 (got %d)", poly)
	}
	return nil
}

// ParseReducingPolynomial accepts decimal ("285") or hex ("0x11d") notation.
func ParseReducingPolynomial(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("reducing polynomial cannot be empty")
	}

	var (
		poly int64
		err  error
	)
	if hexPolyPattern.MatchString(input) {
		poly, err = strconv.ParseInt(input[2:], 16, 32)
	} else {
		poly, err = strconv.ParseInt(input, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid reducing polynomial %q", input)
	}

	if err := ValidateReducingPolynomial(int(poly)); err != nil {
		return 0, err
	}
	return int(poly), nil
}

func ValidateCoefficient(c int) error {
	if c < 0 || c > 255 {
		return fmt.Errorf("coefficient must be between 0 and 255 (got %d)", c)
	}
	return nil
}

// ParseCoefficients parses a comma or whitespace separated list such as
// "1,0,3" or "1 0 3".
func ParseCoefficients(input string) ([]int, error) {
	input = SanitizeInput(input)
	if input == "" {
		return nil, fmt.Errorf("coefficient list cannot be empty")
	}
	if !coefListPattern.MatchString(input) {
		return nil, fmt.Errorf("invalid coefficient list %q", input)
	}

	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	coefs := make([]int, len(tokens))
	for i, tok := range tokens {
		c, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		if err := ValidateCoefficient(c); err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coefs[i] = c
	}

	return coefs, nil
}

// ParseFieldElement parses a single element, e.g. an evaluation point.
func ParseFieldElement(input string) (byte, error) {
	c, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid field element %q", input)
	}
	if err := ValidateCoefficient(c); err != nil {
		return 0, err
	}
	return byte(c), nil
}

// SanitizeInput normalises pasted coefficient lists: every line ending
// becomes "\n" and each line is trimmed, so a list copied from a records
// file parses the same as one typed on the command line.
func SanitizeInput(input string) string {
	lines := strings.Split(lineEndings.Replace(strings.TrimSpace(input)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
