package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// normalizeError turns a non-2xx response body into a single human-readable
// message. Precedence mirrors the API's failure shapes: problem details
// first, then flattened validation errors, then a bare message field, then
// the caller-supplied fallback.
func normalizeError(body []byte, fallback string) error {
	var pd ProblemDetails
	if err := json.Unmarshal(body, &pd); err != nil {
		return errors.New(fallback)
	}

	if pd.Title != nil && *pd.Title != "" {
		status := 0
		if pd.Status != nil {
			status = *pd.Status
		}
		detail := ""
		if pd.Detail != nil {
			detail = *pd.Detail
		}
		return fmt.Errorf("%s (Status: %d) %s", *pd.Title, status, detail)
	}

	if len(pd.Errors) > 0 {
		fields := make([]string, 0, len(pd.Errors))
		for field := range pd.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		var all []string
		for _, field := range fields {
			all = append(all, pd.Errors[field]...)
		}
		return errors.New(strings.Join(all, " "))
	}

	if pd.Message != nil && *pd.Message != "" {
		return errors.New(*pd.Message)
	}

	return errors.New(fallback)
}
