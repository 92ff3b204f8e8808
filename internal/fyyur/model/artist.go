package model

// Artist 音樂人模型，欄位同 Venue 但沒有 address
type Artist struct {
	ID                 int    `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Phone              string `json:"phone" db:"phone"`
	ImageLink          string `json:"image_link" db:"image_link"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
	Website            string `json:"website" db:"website"`
	Genres             string `json:"genres" db:"genres"`
	SeekingVenue       bool   `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
}

// UpdateArtistParams 編輯表單可覆寫的欄位
type UpdateArtistParams struct {
	Name         string
	City         string
	State        string
	Phone        string
	Genres       string
	FacebookLink string
}

// ArtistPage 音樂人詳細頁資料
type ArtistPage struct {
	Artist
	GenreList          []string
	PastShows          []ShowAttachment
	PastShowsCount     int
	UpcomingShows      []ShowAttachment
	UpcomingShowsCount int
}
