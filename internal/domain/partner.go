package domain

// Partner представляет партнера/клиента студии.
// ID хранится как числовая строка и выдается автоинкрементом (max+1).
type Partner struct {
	ID          string `gorm:"primaryKey;column:id;size:20" json:"id"`
	Position    int    `gorm:"column:position;not null;index" json:"-"`
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Category    string `gorm:"column:category;size:100" json:"category"`
	Logo        string `gorm:"column:logo;size:500" json:"logo"`
}

// TableName возвращает название таблицы для GORM
func (Partner) TableName() string {
	return "partners"
}
