package client

import (
	"net/url"
	"strconv"

	"github.com/oadr3-protocol/oadr3-go/pkg/model"
	"github.com/oadr3-protocol/oadr3-go/pkg/names"
)

// MaxPageLimit is the largest page size the schema allows.
const MaxPageLimit = 50

// Page selects a window of a list result. The zero value means the VTN's
// defaults (skip 0, VTN-chosen limit).
type Page struct {
	Skip  int
	Limit int
}

func (p Page) apply(q url.Values) {
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
}

// ListFilter narrows list results by target, as used by most collections.
type ListFilter struct {
	TargetType   names.TargetType
	TargetValues []string
	Page         Page
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.TargetType != "" {
		q.Set("targetType", f.TargetType.String())
	}
	for _, v := range f.TargetValues {
		q.Add("targetValues", v)
	}
	f.Page.apply(q)
	return q
}

// EventFilter narrows event lists.
type EventFilter struct {
	ProgramID    model.ObjectID
	TargetType   names.TargetType
	TargetValues []string
	Page         Page
}

func (f EventFilter) query() url.Values {
	q := url.Values{}
	if f.ProgramID != "" {
		q.Set("programID", f.ProgramID.String())
	}
	if f.TargetType != "" {
		q.Set("targetType", f.TargetType.String())
	}
	for _, v := range f.TargetValues {
		q.Add("targetValues", v)
	}
	f.Page.apply(q)
	return q
}

// ReportFilter narrows report lists.
type ReportFilter struct {
	ProgramID  model.ObjectID
	EventID    model.ObjectID
	ClientName string
	Page       Page
}

func (f ReportFilter) query() url.Values {
	q := url.Values{}
	if f.ProgramID != "" {
		q.Set("programID", f.ProgramID.String())
	}
	if f.EventID != "" {
		q.Set("eventID", f.EventID.String())
	}
	if f.ClientName != "" {
		q.Set("clientName", f.ClientName)
	}
	f.Page.apply(q)
	return q
}

// SubscriptionFilter narrows subscription lists.
type SubscriptionFilter struct {
	ProgramID    model.ObjectID
	ClientName   string
	Objects      []names.ObjectType
	TargetType   names.TargetType
	TargetValues []string
	Page         Page
}

func (f SubscriptionFilter) query() url.Values {
	q := url.Values{}
	if f.ProgramID != "" {
		q.Set("programID", f.ProgramID.String())
	}
	if f.ClientName != "" {
		q.Set("clientName", f.ClientName)
	}
	for _, o := range f.Objects {
		q.Add("objects", o.String())
	}
	if f.TargetType != "" {
		q.Set("targetType", f.TargetType.String())
	}
	for _, v := range f.TargetValues {
		q.Add("targetValues", v)
	}
	f.Page.apply(q)
	return q
}

// listAll drives a paginated list until a short page arrives.
func listAll[T any](firstLimit int, list func(Page) ([]T, error)) ([]T, error) {
	limit := firstLimit
	if limit <= 0 || limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	var all []T
	for skip := 0; ; skip += limit {
		page, err := list(Page{Skip: skip, Limit: limit})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < limit {
			return all, nil
		}
	}
}
