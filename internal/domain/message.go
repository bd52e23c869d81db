package domain

import "time"

// ContactMessage сообщение посетителя, отправленное через форму обратной связи
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	To        string    `gorm:"column:recipient;size:255;not null" json:"to"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"isRead"`
}

// TableName возвращает название таблицы для GORM
func (ContactMessage) TableName() string {
	return "contact_messages"
}
