package core

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jellydator/validation"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	DefaultPage   = 1
	DefaultOffset = 100
	MaxOffset     = 10000
)

// Filter narrows a transaction listing. Zero values mean "use the default".
type Filter struct {
	Page       int     `json:"page"`
	Offset     int     `json:"offset"`
	Sort       string  `json:"sort"`
	StartBlock *uint64 `json:"startBlock,omitempty"`
	EndBlock   *uint64 `json:"endBlock,omitempty"`
}

// StatsFilter is the listing stats and volume are derived from.
func StatsFilter() Filter {
	return Filter{Page: DefaultPage, Offset: DefaultOffset, Sort: SortDesc}
}

func (f Filter) Normalize() Filter {
	if f.Sort == "" {
		f.Sort = SortDesc
	}
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Offset == 0 {
		f.Offset = DefaultOffset
	}
	return f
}

func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Sort, validation.In(SortAsc, SortDesc)),
		validation.Field(&f.Page, validation.Min(1)),
		validation.Field(&f.Offset, validation.Min(1), validation.Max(MaxOffset)),
		validation.Field(&f.EndBlock, validation.By(func(any) error {
			if f.StartBlock != nil && f.EndBlock != nil && *f.StartBlock > *f.EndBlock {
				return errors.New("must not be lower than startBlock")
			}
			return nil
		})),
	)
}

// CacheKey is a deterministic rendering of the normalized filter.
func (f Filter) CacheKey() string {
	n := f.Normalize()
	return fmt.Sprintf("%s:%d:%d:%s:%s", n.Sort, n.Page, n.Offset, blockString(n.StartBlock), blockString(n.EndBlock))
}

func blockString(block *uint64) string {
	if block == nil {
		return ""
	}
	return strconv.FormatUint(*block, 10)
}
