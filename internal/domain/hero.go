package domain

// HeroTitle двухстрочный заголовок hero-секции
type HeroTitle struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// HeroButton кнопка hero-секции (текст + иконка)
type HeroButton struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// HeroButtons пара кнопок hero-секции
type HeroButtons struct {
	Demo    HeroButton `json:"demo"`
	Contact HeroButton `json:"contact"`
}

// HeroData содержимое hero-секции главной страницы.
// Хранится как единый документ, целиком заменяется при обновлении.
type HeroData struct {
	Photo       string      `json:"photo"`
	Title       HeroTitle   `json:"title"`
	Description string      `json:"description"`
	Buttons     HeroButtons `json:"buttons"`
}
