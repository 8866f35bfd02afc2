package types

// Item is one entry of the external sequence served by flipd.
type Item struct {
	// Stable identifier for the item.
	// example: 003-harbour.jpg
	ID string `json:"id" example:"003-harbour.jpg"`
	// Human-friendly name.
	// example: 003-harbour.jpg
	Name string `json:"name" example:"003-harbour.jpg"`
	// Absolute path to the backing file, when the item comes from disk.
	// example: /srv/slides/003-harbour.jpg
	Path string `json:"path,omitempty" example:"/srv/slides/003-harbour.jpg"`
}

// ShowRequest moves the window to a logical position.
type ShowRequest struct {
	// Target logical position. Wrapped when looping, clamped otherwise.
	// example: 5
	Position int `json:"position" example:"5"`
}
