package model

import "time"

// Show 演出模型：一場演出連結一個場地與一位音樂人
type Show struct {
	ID        int       `json:"id" db:"id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// ShowDetail 演出列表用的 join 結果，包含雙方的 id/name/image
type ShowDetail struct {
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowAttachment 詳細頁裡掛在場地或音樂人底下的對方資訊
type ShowAttachment struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ImageLink string    `json:"image_link"`
	StartTime time.Time `json:"start_time"`
}
