package handlers

import (
	"strconv"
	"strings"
)

const (
	// LogFieldKeys for structured logging
	LogFieldEndpoint = "endpoint"
	LogFieldField    = "field"
	LogFieldInput    = "input"

	// ItemIDParam is the path parameter bound by ReadItem
	ItemIDParam = "item_id"

	// QueryParam is the optional query parameter echoed by ReadItem
	QueryParam = "q"
)

// ItemURI - /items/:item_id 경로 파라미터
//
// ItemID carries no "required" rule: zero is a valid id, and the route only
// matches when the segment is present.
type ItemURI struct {
	ItemID ItemID `uri:"item_id"`
}

// ItemID is a base-10 int64 path segment. Surrounding whitespace is ignored,
// so "/items/%205" reads as 5.
type ItemID int64

// UnmarshalParam implements binding.BindUnmarshaler.
func (id *ItemID) UnmarshalParam(param string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(param), 10, 64)
	if err != nil {
		return err
	}
	*id = ItemID(n)
	return nil
}
