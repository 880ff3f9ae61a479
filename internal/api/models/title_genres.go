package models

// explicit join model so genre or title deletion nullifies the link
// instead of cascading
type TitleGenre struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	TitleID *int64 `json:"title_id" gorm:"index"`
	GenreID *int64 `json:"genre_id" gorm:"index"`

	Title *Title `json:"-" gorm:"foreignKey:TitleID;constraint:OnDelete:SET NULL;"`
	Genre *Genre `json:"-" gorm:"foreignKey:GenreID;constraint:OnDelete:SET NULL;"`
}

func (TitleGenre) TableName() string {
	return "title_genres"
}
