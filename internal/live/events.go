package live

import "time"

// LikeEvent fans out whenever a device toggles a favorite, so other
// sessions see counters move without polling.
type LikeEvent struct {
	Type        string    `json:"type"` // "like.update"
	CocktailKey string    `json:"cocktail_key"`
	DeviceID    string    `json:"device_id"`
	Delta       int       `json:"delta"` // +1 liked, -1 unliked
	At          time.Time `json:"at"`
}

func NewLikeEvent(key, deviceID string, delta int) LikeEvent {
	return LikeEvent{Type: "like.update", CocktailKey: key, DeviceID: deviceID, Delta: delta, At: time.Now().UTC()}
}

// SeasonEvent announces that a seasonal page gained new entries.
type SeasonEvent struct {
	Type  string    `json:"type"` // "season.populated"
	Label string    `json:"label"`
	Added int       `json:"added"`
	At    time.Time `json:"at"`
}

func NewSeasonEvent(label string, added int) SeasonEvent {
	return SeasonEvent{Type: "season.populated", Label: label, Added: added, At: time.Now().UTC()}
}
