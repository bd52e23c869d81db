package postgres

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStorage реализует интерфейс Storage для PostgreSQL
type PostgresStorage struct {
	db  *gorm.DB
	log *zap.Logger
}

// New создает новый экземпляр PostgreSQL storage
func New(db *gorm.DB, log *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:  db,
		log: log,
	}
}

// --- Project Methods ---

// ListProjects возвращает все проекты в сохраненном порядке
func (s *PostgresStorage) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := s.db.WithContext(ctx).Order("position asc").Find(&projects).Error; err != nil {
		s.log.Error("failed to list projects", zap.Error(err))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject добавляет проект в конец списка
func (s *PostgresStorage) CreateProject(ctx context.Context, project *domain.Project) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Project{}).Count(&count).Error; err != nil {
			return err
		}
		project.Position = int(count)
		return tx.Create(project).Error
	})
	if err != nil {
		s.log.Error("failed to create project", zap.String("title", project.Title), zap.Error(err))
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// projectAt находит проект по индексу в отсортированном по position списке
func projectAt(tx *gorm.DB, index int) (*domain.Project, error) {
	if index < 0 {
		return nil, repository.ErrNotFound
	}
	var project domain.Project
	err := tx.Order("position asc").Offset(index).Limit(1).First(&project).Error
	if err == gorm.ErrRecordNotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProjectAt заменяет проект по индексу, сохраняя его позицию
func (s *PostgresStorage) UpdateProjectAt(ctx context.Context, index int, project *domain.Project) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := projectAt(tx, index)
		if err != nil {
			return err
		}
		project.ID = existing.ID
		project.Position = existing.Position
		return tx.Save(project).Error
	})
	if err == repository.ErrNotFound {
		return err
	}
	if err != nil {
		s.log.Error("failed to update project", zap.Int("index", index), zap.Error(err))
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteProjectAt удаляет проект по индексу и сдвигает позиции оставшихся
func (s *PostgresStorage) DeleteProjectAt(ctx context.Context, index int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := projectAt(tx, index)
		if err != nil {
			return err
		}
		if err := tx.Delete(existing).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Project{}).
			Where("position > ?", existing.Position).
			Update("position", gorm.Expr("position - 1")).Error
	})
	if err == repository.ErrNotFound {
		return err
	}
	if err != nil {
		s.log.Error("failed to delete project", zap.Int("index", index), zap.Error(err))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ReplaceProjects атомарно заменяет весь список проектов в новом порядке
func (s *PostgresStorage) ReplaceProjects(ctx context.Context, projects []*domain.Project) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Project{}).Error; err != nil {
			return err
		}
		for i, project := range projects {
			project.ID = 0
			project.Position = i
			if err := tx.Create(project).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to replace projects", zap.Int("count", len(projects)), zap.Error(err))
		return fmt.Errorf("failed to replace projects: %w", err)
	}
	return nil
}

// --- Partner Methods ---

// ListPartners возвращает всех партнеров в сохраненном порядке
func (s *PostgresStorage) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	var partners []*domain.Partner
	if err := s.db.WithContext(ctx).Order("position asc").Find(&partners).Error; err != nil {
		s.log.Error("failed to list partners", zap.Error(err))
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

// CreatePartner сохраняет партнера, выдавая следующий числовой ID (max+1)
func (s *PostgresStorage) CreatePartner(ctx context.Context, partner *domain.Partner) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int64
		row := tx.Model(&domain.Partner{}).
			Select("COALESCE(MAX(CAST(id AS BIGINT)), 0)").Row()
		if err := row.Scan(&maxID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&domain.Partner{}).Count(&count).Error; err != nil {
			return err
		}
		partner.ID = strconv.FormatInt(maxID+1, 10)
		partner.Position = int(count)
		return tx.Create(partner).Error
	})
	if err != nil {
		s.log.Error("failed to create partner", zap.String("name", partner.Name), zap.Error(err))
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// UpdatePartner заменяет партнера по ID
func (s *PostgresStorage) UpdatePartner(ctx context.Context, id string, partner *domain.Partner) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Partner
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		partner.ID = id
		partner.Position = existing.Position
		return tx.Save(partner).Error
	})
	if err == repository.ErrNotFound {
		return err
	}
	if err != nil {
		s.log.Error("failed to update partner", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update partner: %w", err)
	}
	return nil
}

// DeletePartner удаляет партнера по ID
func (s *PostgresStorage) DeletePartner(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Partner{})
	if result.Error != nil {
		s.log.Error("failed to delete partner", zap.String("id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete partner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ReplacePartners атомарно заменяет весь список партнеров в новом порядке
func (s *PostgresStorage) ReplacePartners(ctx context.Context, partners []*domain.Partner) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Partner{}).Error; err != nil {
			return err
		}
		for i, partner := range partners {
			partner.Position = i
			if err := tx.Create(partner).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to replace partners", zap.Int("count", len(partners)), zap.Error(err))
		return fmt.Errorf("failed to replace partners: %w", err)
	}
	return nil
}

// --- VoiceService Methods ---

// ListServices возвращает все услуги в сохраненном порядке
func (s *PostgresStorage) ListServices(ctx context.Context) ([]*domain.VoiceService, error) {
	var services []*domain.VoiceService
	if err := s.db.WithContext(ctx).Order("position asc").Find(&services).Error; err != nil {
		s.log.Error("failed to list services", zap.Error(err))
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// CreateService сохраняет услугу, выдавая timestamp-строку в качестве ID
func (s *PostgresStorage) CreateService(ctx context.Context, service *domain.VoiceService) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id := time.Now().UnixMilli()
		// При коллизии (две услуги в одну миллисекунду) сдвигаем ID вперед
		for {
			var count int64
			if err := tx.Model(&domain.VoiceService{}).
				Where("id = ?", strconv.FormatInt(id, 10)).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				break
			}
			id++
		}
		var total int64
		if err := tx.Model(&domain.VoiceService{}).Count(&total).Error; err != nil {
			return err
		}
		service.ID = strconv.FormatInt(id, 10)
		service.Position = int(total)
		return tx.Create(service).Error
	})
	if err != nil {
		s.log.Error("failed to create service", zap.String("title", service.Title), zap.Error(err))
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService заменяет услугу по ID
func (s *PostgresStorage) UpdateService(ctx context.Context, id string, service *domain.VoiceService) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.VoiceService
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return repository.ErrNotFound
			}
			return err
		}
		service.ID = id
		service.Position = existing.Position
		return tx.Save(service).Error
	})
	if err == repository.ErrNotFound {
		return err
	}
	if err != nil {
		s.log.Error("failed to update service", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// DeleteService удаляет услугу по ID
func (s *PostgresStorage) DeleteService(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.VoiceService{})
	if result.Error != nil {
		s.log.Error("failed to delete service", zap.String("id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ReplaceServices атомарно заменяет весь список услуг в новом порядке
func (s *PostgresStorage) ReplaceServices(ctx context.Context, services []*domain.VoiceService) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.VoiceService{}).Error; err != nil {
			return err
		}
		for i, service := range services {
			service.Position = i
			if err := tx.Create(service).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to replace services", zap.Int("count", len(services)), zap.Error(err))
		return fmt.Errorf("failed to replace services: %w", err)
	}
	return nil
}

// --- Single-document Methods ---

func (s *PostgresStorage) getDocument(ctx context.Context, name string, out interface{}) error {
	var doc domain.SiteDocument
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&doc).Error
	if err == gorm.ErrRecordNotFound {
		return repository.ErrNotFound
	}
	if err != nil {
		s.log.Error("failed to get site document", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to get document %q: %w", name, err)
	}
	if err := json.Unmarshal(doc.Payload, out); err != nil {
		return fmt.Errorf("failed to decode document %q: %w", name, err)
	}
	return nil
}

func (s *PostgresStorage) putDocument(ctx context.Context, name string, in interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", name, err)
	}
	doc := domain.SiteDocument{Name: name, Payload: payload}
	// Атомарный upsert вместо delete+insert исходной версии
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		s.log.Error("failed to put site document", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("failed to put document %q: %w", name, err)
	}
	return nil
}

// GetHero возвращает документ hero-секции
func (s *PostgresStorage) GetHero(ctx context.Context) (*domain.HeroData, error) {
	var hero domain.HeroData
	if err := s.getDocument(ctx, domain.DocumentHero, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// PutHero заменяет документ hero-секции
func (s *PostgresStorage) PutHero(ctx context.Context, hero *domain.HeroData) error {
	return s.putDocument(ctx, domain.DocumentHero, hero)
}

// GetContact возвращает документ контактной информации
func (s *PostgresStorage) GetContact(ctx context.Context) (*domain.ContactData, error) {
	var contact domain.ContactData
	if err := s.getDocument(ctx, domain.DocumentContact, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// PutContact заменяет документ контактной информации
func (s *PostgresStorage) PutContact(ctx context.Context, contact *domain.ContactData) error {
	return s.putDocument(ctx, domain.DocumentContact, contact)
}

// --- ContactMessage Methods ---

// ListMessages возвращает сообщения, новые первыми
func (s *PostgresStorage) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	var messages []*domain.ContactMessage
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&messages).Error; err != nil {
		s.log.Error("failed to list messages", zap.Error(err))
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// CreateMessage сохраняет новое сообщение
func (s *PostgresStorage) CreateMessage(ctx context.Context, message *domain.ContactMessage) error {
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		s.log.Error("failed to create message", zap.String("id", message.ID), zap.Error(err))
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// SetMessageRead выставляет флаг прочитанности и возвращает обновленное сообщение
func (s *PostgresStorage) SetMessageRead(ctx context.Context, id string, isRead bool) (*domain.ContactMessage, error) {
	result := s.db.WithContext(ctx).Model(&domain.ContactMessage{}).
		Where("id = ?", id).Update("is_read", isRead)
	if result.Error != nil {
		s.log.Error("failed to update message", zap.String("id", id), zap.Error(result.Error))
		return nil, fmt.Errorf("failed to update message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	var message domain.ContactMessage
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}
	return &message, nil
}

// DeleteMessage удаляет сообщение по ID
func (s *PostgresStorage) DeleteMessage(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ContactMessage{})
	if result.Error != nil {
		s.log.Error("failed to delete message", zap.String("id", id), zap.Error(result.Error))
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// --- Visit Methods ---

// AppendVisit записывает визит; одна INSERT-операция, гонок между
// конкурентными писателями нет в отличие от перезаписи целого файла
func (s *PostgresStorage) AppendVisit(ctx context.Context, visit *domain.Visit) error {
	if err := s.db.WithContext(ctx).Create(visit).Error; err != nil {
		s.log.Error("failed to append visit",
			zap.String("page", visit.Page),
			zap.String("ip", visit.IP),
			zap.Error(err))
		return fmt.Errorf("failed to append visit: %w", err)
	}
	return nil
}

// ListVisits возвращает все визиты в хронологическом порядке
func (s *PostgresStorage) ListVisits(ctx context.Context) ([]*domain.Visit, error) {
	var visits []*domain.Visit
	if err := s.db.WithContext(ctx).Order("timestamp asc").Find(&visits).Error; err != nil {
		s.log.Error("failed to list visits", zap.Error(err))
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

// ListVisitsSince возвращает визиты начиная с указанного момента
func (s *PostgresStorage) ListVisitsSince(ctx context.Context, since time.Time) ([]*domain.Visit, error) {
	var visits []*domain.Visit
	err := s.db.WithContext(ctx).
		Where("timestamp >= ?", since).
		Order("timestamp asc").
		Find(&visits).Error
	if err != nil {
		s.log.Error("failed to list visits since", zap.Time("since", since), zap.Error(err))
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}
