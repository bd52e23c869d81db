package domain

// Project представляет озвученный проект в портфолио.
// Порядок в списке задается колонкой position; клиенты адресуют проекты
// по индексу в отсортированном списке, а не по первичному ключу.
type Project struct {
	ID       int64  `gorm:"primaryKey;column:id" json:"-"`
	Position int    `gorm:"column:position;not null;index" json:"-"`
	Title    string `gorm:"column:title;size:255;not null" json:"title"`
	Type     string `gorm:"column:type;size:100" json:"type"`
	Year     string `gorm:"column:year;size:10" json:"year"`
	URL      string `gorm:"column:url;size:500" json:"url"`
	Voice    string `gorm:"column:voice;size:10" json:"voice"` // 'north' или 'south'
	Category string `gorm:"column:category;size:100" json:"category"`
	Partner  string `gorm:"column:partner;size:255" json:"partner"`
}

// TableName возвращает название таблицы для GORM
func (Project) TableName() string {
	return "projects"
}
