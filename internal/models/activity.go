package models

// ActivityEntry is a status row tagged with its ownership relative to the
// user who requested the activity feed.
type ActivityEntry struct {
	StatusDB
	IsOwnStatus bool `json:"isOwnStatus"`
}
