package domain

// VoiceService представляет услугу озвучивания, предлагаемую на сайте.
// ID — строка с миллисекундным timestamp момента создания.
type VoiceService struct {
	ID          string   `gorm:"primaryKey;column:id;size:20" json:"id"`
	Position    int      `gorm:"column:position;not null;index" json:"-"`
	Title       string   `gorm:"column:title;size:255;not null" json:"title"`
	Description string   `gorm:"column:description;type:text" json:"description"`
	Icon        string   `gorm:"column:icon;size:500" json:"icon"`
	Features    []string `gorm:"column:features;serializer:json;type:jsonb" json:"features"`
}

// TableName возвращает название таблицы для GORM
func (VoiceService) TableName() string {
	return "services"
}
