package models

// ManifestEnvelope is the wrapper the client expects around the network
// manifest. Content holds the manifest content re-serialized as a string.
type ManifestEnvelope struct {
	Sign    string `json:"sign"`
	Content string `json:"content"`
}

// DeltaEnvelope is the player data delta carried by gameplay responses.
// An empty one is what unknown client calls receive.
type DeltaEnvelope struct {
	PlayerDataDelta PlayerDataDelta `json:"playerDataDelta"`
}

// PlayerDataDelta lists deleted and modified player data sections.
type PlayerDataDelta struct {
	Deleted  map[string]any `json:"deleted"`
	Modified map[string]any `json:"modified"`
}

// NewEmptyDelta returns a delta envelope with both sections present and empty.
func NewEmptyDelta() DeltaEnvelope {
	return DeltaEnvelope{
		PlayerDataDelta: PlayerDataDelta{
			Deleted:  map[string]any{},
			Modified: map[string]any{},
		},
	}
}

// RefreshConfig is returned by the refresh_config endpoint. ResVersion is
// always null.
type RefreshConfig struct {
	ResVersion *string `json:"resVersion"`
}

// ServerTime is the general/v1/server_time response.
type ServerTime struct {
	Code int            `json:"code"`
	Data ServerTimeData `json:"data"`
	Msg  string         `json:"msg"`
}

// ServerTimeData carries the current unix time in seconds.
type ServerTimeData struct {
	IsHoliday  bool  `json:"isHoliday"`
	ServerTime int64 `json:"serverTime"`
}

// ErrorResponse is written for every request that fails inside a handler.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
