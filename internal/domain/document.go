package domain

import "time"

// SiteDocument единичный документ сайта (hero, contact), хранится как jsonb.
// Для каждого имени существует не более одной строки.
type SiteDocument struct {
	Name      string    `gorm:"primaryKey;column:name;size:50" json:"name"`
	Payload   []byte    `gorm:"column:payload;type:jsonb;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Имена документов сайта
const (
	DocumentHero    = "hero"
	DocumentContact = "contact"
)

// TableName возвращает название таблицы для GORM
func (SiteDocument) TableName() string {
	return "site_documents"
}
