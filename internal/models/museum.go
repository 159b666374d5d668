package models

import "gorm.io/gorm"

// Museum represents a museum that holds relics and publishes notices
type Museum struct {
	gorm.Model
	Name          string `json:"museum_name"`
	Description   string `json:"description,omitempty" gorm:"type:text"`
	Address       string `json:"address,omitempty"`
	WebsiteURL    string `json:"website_url,omitempty"`
	BookingURL    string `json:"booking_url,omitempty"`
	LikeCount     int    `json:"like_count" gorm:"default:0"`
	FavoriteCount int    `json:"favorite_count" gorm:"default:0"`
	CommentCount  int    `json:"comment_count" gorm:"default:0"`

	Images []MuseumImage `json:"images,omitempty" gorm:"foreignKey:MuseumID"`
}

// MuseumImage holds a display image URL for a museum
type MuseumImage struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	MuseumID uint   `json:"museum_id" gorm:"index"`
	ImgURL   string `json:"img_url"`
}

// Notice represents a museum announcement
type Notice struct {
	gorm.Model
	MuseumID uint   `json:"museum_id" gorm:"index"`
	Title    string `json:"title"`
	Content  string `json:"content" gorm:"type:text"`
}

// MuseumSummary is the list-view shape of a museum
type MuseumSummary struct {
	MuseumID   uint   `json:"museum_id"`
	MuseumName string `json:"museum_name"`
	Image      string `json:"museum_image"`
}

// MuseumRank is one row of the relic-count ranking
type MuseumRank struct {
	MuseumID   uint   `json:"museum_id"`
	MuseumName string `json:"museum_name"`
	Address    string `json:"address"`
	Image      string `json:"museum_image"`
	RelicCount int64  `json:"relic_count"`
}
