package model

// Venue 場地模型，genres 以逗號串接存成單一字串
type Venue struct {
	ID                 int    `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Address            string `json:"address" db:"address"`
	Phone              string `json:"phone" db:"phone"`
	ImageLink          string `json:"image_link" db:"image_link"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
	Website            string `json:"website" db:"website"`
	Genres             string `json:"genres" db:"genres"`
	SeekingTalent      bool   `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
}

// UpdateVenueParams 編輯表單可覆寫的欄位
type UpdateVenueParams struct {
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	Genres       string
	FacebookLink string
}

// VenueSummary 列表與搜尋結果用的精簡投影
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup 依 (city, state) 分組後的場地列表
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// SearchResult 搜尋回應：總數加上各筆摘要
type SearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenuePage 場地詳細頁資料
type VenuePage struct {
	Venue
	GenreList          []string
	PastShows          []ShowAttachment
	PastShowsCount     int
	UpcomingShows      []ShowAttachment
	UpcomingShowsCount int
}
