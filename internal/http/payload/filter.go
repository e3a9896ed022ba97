package payload

import (
	"errors"
	"net/url"
	"strconv"
	"usdcdash/internal/core"

	"github.com/jellydator/validation"
)

// ParseFilter reads page, offset, sort, startBlock and endBlock from the query string.
// Absent parameters stay zero so the filter defaults apply.
func ParseFilter(values url.Values) (core.Filter, error) {
	var (
		filter core.Filter
		errs   = validation.Errors{}
	)

	filter.Sort = values.Get("sort")

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			errs["page"] = errors.New("must be an integer")
		}
		filter.Page = page
	}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			errs["offset"] = errors.New("must be an integer")
		}
		filter.Offset = offset
	}

	for _, field := range []struct {
		name   string
		target **uint64
	}{
		{"startBlock", &filter.StartBlock},
		{"endBlock", &filter.EndBlock},
	} {
		raw := values.Get(field.name)
		if raw == "" {
			continue
		}
		block, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			errs[field.name] = errors.New("must be a block number")
			continue
		}
		*field.target = &block
	}

	if err := errs.Filter(); err != nil {
		return core.Filter{}, err
	}
	return filter, nil
}
