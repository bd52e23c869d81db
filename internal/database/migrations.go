package database

import (
	"VoiceTalent-Backend/internal/domain"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate выполняет автоматические миграции для всех доменных моделей
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("starting database auto-migration")

	models := []interface{}{
		&domain.Project{},
		&domain.Partner{},
		&domain.VoiceService{},
		&domain.SiteDocument{},
		&domain.ContactMessage{},
		&domain.Visit{},
	}

	for _, model := range models {
		modelName := fmt.Sprintf("%T", model)
		if err := db.AutoMigrate(model); err != nil {
			log.Error("failed to migrate model",
				zap.String("model", modelName),
				zap.Error(err))
			return fmt.Errorf("failed to migrate model %s: %w", modelName, err)
		}
	}

	log.Info("database auto-migration completed successfully", zap.Int("migrated_models", len(models)))
	return nil
}

// SeedData заполняет базу документами hero и contact по умолчанию,
// чтобы публичный сайт имел содержимое до первого захода в админку
func SeedData(db *gorm.DB, log *zap.Logger) error {
	log.Info("starting database seeding")

	var count int64
	db.Model(&domain.SiteDocument{}).Count(&count)
	if count > 0 {
		log.Info("site documents already exist, skipping seeding", zap.Int64("existing_count", count))
		return nil
	}

	hero := domain.HeroData{
		Photo: "/images/hero.jpg",
		Title: domain.HeroTitle{
			Line1: "Giọng nói chuyên nghiệp",
			Line2: "cho thương hiệu của bạn",
		},
		Description: "Voice talent cho TVC, phim tài liệu và tổng đài.",
		Buttons: domain.HeroButtons{
			Demo:    domain.HeroButton{Text: "Nghe demo", Icon: "play"},
			Contact: domain.HeroButton{Text: "Liên hệ", Icon: "mail"},
		},
	}

	contact := domain.ContactData{
		Social: domain.ContactSocial{
			Facebook: domain.SocialLink{Name: "Facebook", URL: "https://facebook.com", Icon: "facebook"},
			Zalo:     domain.SocialLink{Name: "Zalo", URL: "https://zalo.me", Icon: "zalo"},
			Phone:    domain.SocialLink{Name: "Phone", URL: "tel:+84", Icon: "phone"},
			Email:    domain.SocialLink{Name: "Email", URL: "mailto:hello@example.com", Icon: "mail"},
		},
		Office: domain.ContactOffice{
			Address:      domain.OfficeInfo{Title: "Địa chỉ", Content: "TP. Hồ Chí Minh", Icon: "map"},
			WorkingHours: domain.OfficeInfo{Title: "Giờ làm việc", Content: "9:00 - 18:00", Icon: "clock"},
		},
	}

	documents := map[string]interface{}{
		domain.DocumentHero:    &hero,
		domain.DocumentContact: &contact,
	}

	for name, data := range documents {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode seed document %s: %w", name, err)
		}
		doc := domain.SiteDocument{Name: name, Payload: payload}
		if err := db.Create(&doc).Error; err != nil {
			log.Error("failed to seed document", zap.String("name", name), zap.Error(err))
			return fmt.Errorf("failed to seed document %s: %w", name, err)
		}
	}

	log.Info("database seeding completed", zap.Int("documents", len(documents)))
	return nil
}
