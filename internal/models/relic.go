package models

import "gorm.io/gorm"

// Relic represents a cultural relic held by a museum
type Relic struct {
	gorm.Model
	Name          string `json:"name"`
	Dynasty       string `json:"dynasty"`
	Description   string `json:"description,omitempty" gorm:"type:text"`
	MuseumID      uint   `json:"museum_id" gorm:"index"`
	LikeCount     int    `json:"like_count" gorm:"default:0"`
	FavoriteCount int    `json:"favorite_count" gorm:"default:0"`
	CommentCount  int    `json:"comment_count" gorm:"default:0"`

	Images []RelicImage `json:"images,omitempty" gorm:"foreignKey:RelicID"`
}

// RelicImage holds a display image URL for a relic
type RelicImage struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	RelicID uint   `json:"relic_id" gorm:"index"`
	ImgURL  string `json:"img_url"`
}

// RelicSummary is the list-view shape of a relic
type RelicSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category"` // dynasty, surfaced as category for the client
}
