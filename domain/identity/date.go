package identity

import (
	"strconv"
	"strings"
	"time"
)

// FieldKind tells the normalizer which two-digit-year convention applies.
type FieldKind string

const (
	FieldDateOfBirth FieldKind = "DateOfBirth"
	FieldIssueDate   FieldKind = "IssueDate"
	FieldExpireDate  FieldKind = "ExpireDate"
)

// monthTable maps English and French month names (short and full forms,
// accents included) to their two-digit number. Tokens not in the table pass
// through unchanged so already-numeric months still work.
var monthTable = map[string]string{
	"JAN": "01", "JANVIER": "01", "JANV": "01",
	"FEB": "02", "FEVRIER": "02", "FEV": "02",
	"MAR": "03", "MARS": "03",
	"APR": "04", "AVRIL": "04", "AVR": "04",
	"MAY": "05", "MAI": "05",
	"JUN": "06", "JUIN": "06", "JUI": "06",
	"JUL": "07", "JUILLET": "07",
	"AUG": "08", "AOUT": "08", "AOÛ": "08",
	"SEP": "09", "SEPTEMBRE": "09",
	"OCT": "10", "OCTOBRE": "10",
	"NOV": "11", "NOVEMBRE": "11",
	"DEC": "12", "DECEMBRE": "12", "DÉC": "12",
}

// NormalizeDate turns an extracted date string into YYYY-MM-DD form.
//
// Two layouts are accepted: space-separated ("07 JUN 94", "16 JUL 2024",
// "01 ME/JUN 2024", bilingual "07 JUN / JUIN 94") and dot-separated numeric
// ("20.05.2023"). Two-digit years are expanded by kind: birth years below 30
// land in 20xx and at or above 30 in 19xx, while issue/expiry years are
// always 20xx — document validity dates are assumed post-2000.
//
// The second return value is false when the input matches neither layout;
// callers treat that as "field unavailable", not as a failure.
func NormalizeDate(raw string, kind FieldKind) (string, bool) {
	switch {
	case strings.Contains(raw, " "):
		parts := strings.Fields(raw)
		if len(parts) < 3 || len(parts) > 5 {
			return "", false
		}
		day := parts[0]
		month := monthNumber(slashTail(parts[1]))
		year := expandYear(parts[len(parts)-1], kind)
		return year + "-" + month + "-" + day, true
	case strings.Contains(raw, "."):
		parts := strings.Split(raw, ".")
		if len(parts) != 3 {
			return "", false
		}
		return expandYear(parts[2], kind) + "-" + parts[1] + "-" + parts[0], true
	default:
		return "", false
	}
}

// slashTail handles bilingual month tokens like "ME/JUN": the token after
// the slash is the one to translate.
func slashTail(token string) string {
	if idx := strings.IndexByte(token, '/'); idx >= 0 && idx+1 < len(token) {
		return token[idx+1:]
	}
	return token
}

func monthNumber(token string) string {
	if month, ok := monthTable[strings.ToUpper(token)]; ok {
		return month
	}
	return token
}

func expandYear(year string, kind FieldKind) string {
	if len(year) != 2 {
		return year
	}
	if kind == FieldDateOfBirth {
		if n, err := strconv.Atoi(year); err == nil && n < 30 {
			return "20" + year
		}
		return "19" + year
	}
	return "20" + year
}

// Age derives an age from an ISO birth date by calendar-year subtraction
// only; month and day are deliberately not taken into account.
func Age(birthDateISO string) (int, error) {
	year, err := strconv.Atoi(strings.SplitN(birthDateISO, "-", 2)[0])
	if err != nil {
		return 0, err
	}
	return time.Now().Year() - year, nil
}
