package primitive

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tag-reviver/utils"
	"tag-reviver/value"
)

var ErrNotATime = errors.New("not a timestamp")

var (
	stringLike       = regexp.MustCompile(`^[^\d.:-]?[\p{L}_\s!@#$%^&*(){}<>|/\\~;=]+`)
	timestampRe      = regexp.MustCompile(`^(-?\d{4})-(\d{1,2})-(\d{1,2})(?:[Tt]|\s+)(\d{1,2}):(\d\d):(\d\d)(?:\.(\d*))?\s*(Z|[-+]\d{1,2}(?::?\d\d)?)?$`)
	dateRe           = regexp.MustCompile(`^\d{4}-(?:1[012]|0\d|\d)-(?:[12]\d|3[01]|0\d|\d)$`)
	posInfRe         = regexp.MustCompile(`(?i)^\+?\.inf$`)
	negInfRe         = regexp.MustCompile(`(?i)^-\.inf$`)
	nanRe            = regexp.MustCompile(`(?i)^\.nan$`)
	sexagesimalInt   = regexp.MustCompile(`^[-+]?[0-9][0-9_]*(:[0-5]?[0-9]){1,2}$`)
	sexagesimalFloat = regexp.MustCompile(`^[-+]?[0-9][0-9_]*(:[0-5]?[0-9]){1,2}\.[0-9_]*$`)
	floatRe          = regexp.MustCompile(`^(?:[-+]?([0-9][0-9_,]*)?\.[0-9]*([eE][-+][0-9]+)?|[-+]?\.(inf|Inf|INF)|\.(nan|NaN|NAN))$`)
	bareDotRe        = regexp.MustCompile(`^[-+]?\.$`)
	trailingDotRe    = regexp.MustCompile(`\.([Ee]|$)`)
	integerStrict    = regexp.MustCompile(`^(?:[-+]?0b_*[01][01_]*|[-+]?0_*[0-7][0-7_]*|[-+]?(?:0|[1-9][0-9_]*)|[-+]?0x_*[0-9a-fA-F][0-9a-fA-F_]*)$`)
	integerLegacy    = regexp.MustCompile(`^(?:[-+]?0b[01_,]+|[-+]?0[0-7_,]+|[-+]?(?:0|[1-9](?:[0-9]|,[0-9]|_[0-9])*)|[-+]?0x[0-9a-fA-F_,]+)$`)

	digitSeparators = strings.NewReplacer(",", "", "_", "")
)

// Classifier turns untagged scalar text into a typed value.
type Classifier interface {
	Classify(text string) any
}

// Scanner is the default Classifier.
type Scanner struct {
	// StrictIntegers rejects "," as a digit separator in integers.
	StrictIntegers bool
}

// Classify returns the typed value text denotes, or text itself.
func (s Scanner) Classify(text string) any {
	if text == "" {
		return nil
	}

	// words, hash keys and anything multi-line: only the short
	// null/bool spellings are special
	if stringLike.MatchString(text) || strings.Contains(text, "\n") {
		if len(text) > 5 {
			return text
		}

		return classifyWord(text)
	}

	switch {
	case timestampRe.MatchString(text):
		t, err := ParseTime(text)
		if err != nil {
			return text
		}

		return t

	case dateRe.MatchString(text):
		t, err := time.Parse("2006-1-2", text)
		if err != nil {
			return text
		}

		return t

	case posInfRe.MatchString(text):
		return math.Inf(1)

	case negInfRe.MatchString(text):
		return math.Inf(-1)

	case nanRe.MatchString(text):
		return math.NaN()

	case len(text) > 1 && text[0] == ':':
		return parseSymbol(text)

	case sexagesimalInt.MatchString(text):
		return parseSexagesimalInt(text)

	case sexagesimalFloat.MatchString(text):
		return parseSexagesimalFloat(text)

	case floatRe.MatchString(text):
		if bareDotRe.MatchString(text) {
			return text
		}

		f, err := ParseFloat(text)
		if err != nil {
			return text
		}

		return f

	case s.integerPattern().MatchString(text):
		n, err := ParseInt(text)
		if err != nil {
			return text
		}

		return n
	}

	return text
}

func (s Scanner) integerPattern() *regexp.Regexp {
	if s.StrictIntegers {
		return integerStrict
	}

	return integerLegacy
}

func classifyWord(text string) any {
	switch strings.ToLower(text) {
	case "~", "null":
		return nil
	case "yes", "true", "on":
		return true
	case "no", "false", "off":
		return false
	default:
		return text
	}
}

func parseSymbol(text string) value.Symbol {
	name := text[1:]

	if q := name[0]; q == '"' || q == '\'' {
		if end := strings.LastIndexByte(name[1:], q); end >= 0 {
			name = strings.TrimPrefix(name[1:1+end], ":")
		}
	}

	return value.Symbol(name)
}

// ParseInt parses an integer literal with an optional sign, 0b/0/0x prefix,
// and "_" or "," separators. Values beyond the int range come back as *big.Int.
func ParseInt(text string) (any, error) {
	clean := digitSeparators.Replace(text)

	n, err := strconv.ParseInt(clean, 0, strconv.IntSize)
	if err == nil {
		return int(n), nil
	}

	if !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid integer %q: %w", text, err)
	}

	b, ok := new(big.Int).SetString(clean, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", text)
	}

	return b, nil
}

// ParseFloat parses a decimal float literal with "_" or "," separators and an
// optional trailing dot ("1." or "1.e5").
func ParseFloat(text string) (float64, error) {
	clean := trailingDotRe.ReplaceAllString(digitSeparators.Replace(text), "$1")

	switch strings.ToLower(strings.TrimLeft(clean, "+")) {
	case ".inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}

	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float %q: %w", text, err)
	}

	return f, nil
}

// ParseTime parses a YAML timestamp ("2001-12-14t21:59:43.10-05:00") or a bare
// date ("2002-12-14"). Timestamps without a zone are UTC.
func ParseTime(text string) (time.Time, error) {
	if dateRe.MatchString(text) {
		t, err := time.Parse("2006-1-2", text)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrNotATime, text, err)
		}

		return t, nil
	}

	m := timestampRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNotATime, text)
	}

	nums := make([]int, 6)
	for i := range nums {
		nums[i], _ = strconv.Atoi(m[i+1])
	}

	frac := m[7]
	if len(frac) > 9 {
		frac = frac[:9]
	}

	nsec := 0
	if frac != "" {
		nsec, _ = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	}

	loc, err := zone(m[8])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrNotATime, text, err)
	}

	year, month, day, hour, minute, sec := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc)

	if t.Month() != time.Month(month) || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %q: out of range", ErrNotATime, text)
	}

	return t, nil
}

func zone(z string) (*time.Location, error) {
	if z == "" || z == "Z" {
		return time.UTC, nil
	}

	sign := 1
	if z[0] == '-' {
		sign = -1
	}

	var hh, mm string

	switch body := z[1:]; {
	case strings.Contains(body, ":"):
		hh, mm = utils.Unpack2(strings.SplitN(body, ":", 2))
	case len(body) > 2:
		hh, mm = body[:len(body)-2], body[len(body)-2:]
	default:
		hh = body
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return nil, err
	}

	var minutes int
	if mm != "" {
		if minutes, err = strconv.Atoi(mm); err != nil {
			return nil, err
		}
	}

	if !utils.IsInRange(0, hours, 23) || !utils.IsInRange(0, minutes, 59) {
		return nil, fmt.Errorf("zone offset %q out of range", z)
	}

	offset := sign * (hours*3600 + minutes*60)

	return time.FixedZone("", offset), nil
}

func sexagesimalParts(text string) (sign int, parts []string) {
	sign = 1

	switch text[0] {
	case '-':
		sign = -1
		text = text[1:]
	case '+':
		text = text[1:]
	}

	return sign, strings.Split(digitSeparators.Replace(text), ":")
}

func parseSexagesimalInt(text string) any {
	sign, parts := sexagesimalParts(text)

	base := big.NewInt(60)

	total := new(big.Int)
	for _, p := range parts {
		n, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return text
		}

		total.Mul(total, base).Add(total, n)
	}

	if sign < 0 {
		total.Neg(total)
	}

	if total.IsInt64() && total.Int64() >= math.MinInt && total.Int64() <= math.MaxInt {
		return int(total.Int64())
	}

	return total
}

func parseSexagesimalFloat(text string) any {
	sign, parts := sexagesimalParts(text)

	total := 0.0
	for _, p := range parts {
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return text
		}

		total = total*60 + n
	}

	return float64(sign) * total
}
