package httpapi

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shestoi/GoBigTech/braintree/internal/report"
	"github.com/shestoi/GoBigTech/braintree/internal/service"
)

const (
	pageSizeParam = "page_size"
	pageParam     = "page"
)

type queryError struct {
	param  string
	reason string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("invalid query parameter %q: %s", e.param, e.reason)
}

type reportQuery struct {
	Filters  []service.Filter
	PageSize *int `validate:"omitempty,min=1,max=1000"`
	Page     int  `validate:"omitempty,min=1"`
}

// parseReportQuery разбирает фильтры вида field=v, field=v1&field=v2 (in)
// и field[op]=v. Условия одного поля объединяются.
func parseReportQuery(values url.Values) (reportQuery, error) {
	var q reportQuery
	conditions := make(map[string]report.Condition)

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case pageSizeParam:
			n, err := strconv.Atoi(vals[0])
			if err != nil {
				return reportQuery{}, &queryError{param: key, reason: "must be an integer"}
			}
			q.PageSize = &n
			continue
		case pageParam:
			n, err := strconv.Atoi(vals[0])
			if err != nil {
				return reportQuery{}, &queryError{param: key, reason: "must be an integer"}
			}
			q.Page = n
			continue
		}

		field, op, err := splitFilterKey(key)
		if err != nil {
			return reportQuery{}, err
		}
		cond, ok := conditions[field]
		if !ok {
			cond = report.Condition{}
			conditions[field] = cond
		}

		switch {
		case op == "in":
			cond["in"] = splitValues(vals)
		case op == "" && len(vals) > 1:
			cond["in"] = splitValues(vals)
		case op == "":
			cond["eq"] = vals[0]
		default:
			cond[op] = vals[0]
		}
	}

	fields := make([]string, 0, len(conditions))
	for field := range conditions {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		q.Filters = append(q.Filters, service.Filter{Field: field, Condition: conditions[field]})
	}
	return q, nil
}

func splitFilterKey(key string) (field, op string, err error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, "", nil
	}
	if open == 0 || !strings.HasSuffix(key, "]") || open+1 >= len(key)-1 {
		return "", "", &queryError{param: key, reason: "expected field or field[operator]"}
	}
	return key[:open], key[open+1 : len(key)-1], nil
}

func splitValues(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
