package bulkimport

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
)

// ParseFreeText parses one student per line, fields separated by whitespace
// or tabs: "<number> <name...>" when the first token is all digits, otherwise
// the whole line is the name. Blank lines are skipped.
func ParseFreeText(input string) []circulation.StudentInput {
	inputs := make([]circulation.StudentInput, 0)

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if number, ok := parseNumber(fields[0]); ok && len(fields) > 1 {
			inputs = append(inputs, circulation.StudentInput{
				Number: &number,
				Name:   strings.Join(fields[1:], " "),
			})
			continue
		}

		inputs = append(inputs, circulation.StudentInput{Name: line})
	}

	return inputs
}

// ParseCSV parses one student per line, comma-separated: "<number>,<name>"
// when the first field is all digits, otherwise the whole line (commas
// rejoined with spaces) is the name. Blank lines are skipped; lines the CSV
// reader cannot make sense of are skipped too rather than failing the batch.
func ParseCSV(input string) []circulation.StudentInput {
	inputs := make([]circulation.StudentInput, 0)

	reader := csv.NewReader(strings.NewReader(input))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}

		if len(record) == 0 {
			continue
		}

		first := strings.TrimSpace(record[0])
		if len(record) == 1 && first == "" {
			continue
		}

		if number, ok := parseNumber(first); ok && len(record) > 1 {
			inputs = append(inputs, circulation.StudentInput{
				Number: &number,
				Name:   strings.TrimSpace(strings.Join(record[1:], " ")),
			})
			continue
		}

		inputs = append(inputs, circulation.StudentInput{
			Name: strings.TrimSpace(strings.Join(record, " ")),
		})
	}

	return inputs
}

// parseNumber accepts only all-digit tokens; signs and decimals degrade to
// name-only parsing.
func parseNumber(token string) (int, bool) {
	if token == "" {
		return 0, false
	}

	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	number, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}

	return number, true
}
