package services

// Item - /items/{item_id} 응답
//
// Q has no omitempty: an absent query parameter must serialize as null.
type Item struct {
	ItemID int64   `json:"item_id"`
	Q      *string `json:"q"`
}

// NewItem echoes the path id and optional query value back as an Item.
func NewItem(id int64, q *string) Item {
	return Item{ItemID: id, Q: q}
}

// LastValue picks the effective value of a repeated query parameter.
// The last occurrence wins; ok is false when the parameter is absent.
func LastValue(values []string) (value *string, ok bool) {
	if len(values) == 0 {
		return nil, false
	}
	v := values[len(values)-1]
	return &v, true
}
