package domain

import "time"

// Visit представляет одно событие просмотра страницы. Записи неизменяемы:
// они только добавляются и никогда не обновляются и не удаляются.
type Visit struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"-"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index" json:"timestamp"`
	Page      string    `gorm:"column:page;size:500;not null" json:"page"`
	UserAgent string    `gorm:"column:user_agent;type:text" json:"userAgent,omitempty"`
	IP        string    `gorm:"column:ip;size:45;not null;index" json:"ip"`
	SessionID string    `gorm:"column:session_id;size:64;not null;index" json:"sessionId"`
}

// TableName возвращает название таблицы для GORM
func (Visit) TableName() string {
	return "visits"
}

// Date возвращает календарную дату визита (UTC, YYYY-MM-DD)
func (v *Visit) Date() string {
	return v.Timestamp.UTC().Format("2006-01-02")
}

// DailyStat агрегированные счетчики визитов за одну календарную дату.
// Всегда вычисляется заново из полного списка визитов, не хранится в БД.
type DailyStat struct {
	Date                string `json:"date"`
	Visits              int    `json:"visits"`
	UniqueVisits        int    `json:"uniqueVisits"`
	UniqueIPVisits      int    `json:"uniqueIPVisits"`
	UniqueSessionVisits int    `json:"uniqueSessionVisits"`
}
