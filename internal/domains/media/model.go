package media

// Asset is the result of a successful upload. PublicID is the stable
// identifier used by the delete path; URL points at the stored object.
// Width and height are the dimensions after server-side normalization,
// never the client-reported ones.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// GenerateVariantsPayload asks the worker to build display variants for
// an uploaded asset.
type GenerateVariantsPayload struct {
	Key      string `json:"key"`
	PublicID string `json:"public_id"`
}

// CleanupOrphansPayload drives the nightly sweep of stored objects that
// no persisted record references anymore.
type CleanupOrphansPayload struct {
	OlderThanHours int `json:"older_than_hours"`
}
