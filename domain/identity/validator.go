package identity

import (
	"strings"
	"time"

	"github.com/choace0427/brightspeed-ai-backend/domain/extraction"
	"github.com/choace0427/brightspeed-ai-backend/errors"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Expected carries the caller-supplied reference values the document must
// match.
type Expected struct {
	FirstName   string
	LastName    string
	DateOfBirth string
}

type Mismatch struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report is the verdict for one identity document: the overall status, every
// rule that fired, and the normalized extracted data.
type Report struct {
	Status        string         `json:"status"`
	Mismatches    []Mismatch     `json:"mismatches"`
	ExtractedData map[string]any `json:"extractedData"`
}

// requiredAliases must all be present (and, for dates, parseable) before any
// rule can be evaluated.
var requiredAliases = []string{
	extraction.AliasGivenName,
	extraction.AliasSurname,
	extraction.AliasDateOfBirth,
	extraction.AliasIssueDate,
	extraction.AliasExpireDate,
}

// dateKinds routes date-bearing aliases to their normalization kind.
var dateKinds = map[string]FieldKind{
	extraction.AliasDateOfBirth: FieldDateOfBirth,
	extraction.AliasIssueDate:   FieldIssueDate,
	extraction.AliasExpireDate:  FieldExpireDate,
}

// Validate normalizes the reconciled fields and applies the business rules.
// The four mismatch rules are independent: all of them are evaluated and
// every one that fires is reported. A missing or unparseable required field
// is an error, not a mismatch — the caller sent a document the rules cannot
// be applied to.
func Validate(fields extraction.BestAnswerMap, expected Expected) (Report, error) {
	for _, alias := range requiredAliases {
		if _, ok := fields[alias]; !ok {
			return Report{}, errors.MissingField(alias)
		}
	}

	extracted := make(map[string]any, len(fields)+1)
	for _, candidate := range fields.Candidates() {
		switch {
		case dateKinds[candidate.Alias] != "":
			normalized, ok := NormalizeDate(candidate.AnswerText, dateKinds[candidate.Alias])
			if !ok {
				return Report{}, errors.MissingField(candidate.Alias)
			}
			extracted[candidate.Alias] = normalized
			if candidate.Alias == extraction.AliasDateOfBirth {
				if age, err := Age(normalized); err == nil {
					extracted[extraction.AliasAge] = age
				}
			}
		case candidate.Alias == extraction.AliasSex:
			if candidate.AnswerText == "M" || candidate.AnswerText == "MR" {
				extracted[candidate.Alias] = "M"
			} else {
				extracted[candidate.Alias] = "F"
			}
		default:
			extracted[candidate.Alias] = candidate.AnswerText
		}
	}

	issueDate, err := parseISO(extracted[extraction.AliasIssueDate].(string))
	if err != nil {
		return Report{}, errors.MissingField(extraction.AliasIssueDate)
	}
	expiryDate, err := parseISO(extracted[extraction.AliasExpireDate].(string))
	if err != nil {
		return Report{}, errors.MissingField(extraction.AliasExpireDate)
	}

	mismatches := []Mismatch{}
	givenName := extracted[extraction.AliasGivenName].(string)
	surname := extracted[extraction.AliasSurname].(string)
	if !strings.EqualFold(givenName, expected.FirstName) || !strings.EqualFold(surname, expected.LastName) {
		mismatches = append(mismatches, Mismatch{Field: "name", Message: "Mis Matching Name"})
	}
	if extracted[extraction.AliasDateOfBirth] != expected.DateOfBirth {
		mismatches = append(mismatches, Mismatch{Field: "dob", Message: "Mis Matching DOB"})
	}
	if !expiryDate.After(issueDate) {
		mismatches = append(mismatches, Mismatch{Field: "expiryDate", Message: "Expiry date must be after the issued date"})
	}
	if !time.Now().Before(expiryDate) {
		mismatches = append(mismatches, Mismatch{Field: "expiryDate", Message: "Expiry date has expired"})
	}
	status := StatusSuccess
	if len(mismatches) > 0 {
		status = StatusFailure
	}
	return Report{Status: status, Mismatches: mismatches, ExtractedData: extracted}, nil
}

// parseISO accepts the normalizer's output, padded or not.
func parseISO(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-1-2", value)
}
