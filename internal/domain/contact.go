package domain

// SocialLink ссылка на соцсеть или канал связи
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// OfficeInfo информационный блок об офисе
type OfficeInfo struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
}

// ContactSocial набор соцсетей для секции контактов
type ContactSocial struct {
	Facebook SocialLink `json:"facebook"`
	Zalo     SocialLink `json:"zalo"`
	Phone    SocialLink `json:"phone"`
	Email    SocialLink `json:"email"`
}

// ContactOffice адрес и часы работы
type ContactOffice struct {
	Address      OfficeInfo `json:"address"`
	WorkingHours OfficeInfo `json:"workingHours"`
}

// ContactData контактная информация сайта, хранится единым документом
type ContactData struct {
	Social ContactSocial `json:"social"`
	Office ContactOffice `json:"office"`
}
