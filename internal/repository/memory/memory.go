package memory

import (
	"VoiceTalent-Backend/internal/domain"
	"VoiceTalent-Backend/internal/repository"
	"context"
	"strconv"
	"sync"
	"time"
)

// MemStorage in-memory реализация Storage для тестов и локального запуска
type MemStorage struct {
	mu        sync.RWMutex
	projects  []*domain.Project
	partners  []*domain.Partner
	services  []*domain.VoiceService
	hero      *domain.HeroData
	contact   *domain.ContactData
	messages  []*domain.ContactMessage
	visits    []*domain.Visit
	serviceID int64
}

func New() *MemStorage {
	return &MemStorage{}
}

// --- Project Methods ---

func (s *MemStorage) ListProjects(_ context.Context) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Project, len(s.projects))
	for i, p := range s.projects {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (s *MemStorage) CreateProject(_ context.Context, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	project.Position = len(s.projects)
	cp := *project
	s.projects = append(s.projects, &cp)
	return nil
}

func (s *MemStorage) UpdateProjectAt(_ context.Context, index int, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.projects) {
		return repository.ErrNotFound
	}
	project.Position = index
	cp := *project
	s.projects[index] = &cp
	return nil
}

func (s *MemStorage) DeleteProjectAt(_ context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.projects) {
		return repository.ErrNotFound
	}
	s.projects = append(s.projects[:index], s.projects[index+1:]...)
	for i, p := range s.projects {
		p.Position = i
	}
	return nil
}

func (s *MemStorage) ReplaceProjects(_ context.Context, projects []*domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make([]*domain.Project, len(projects))
	for i, p := range projects {
		cp := *p
		cp.Position = i
		s.projects[i] = &cp
	}
	return nil
}

// --- Partner Methods ---

func (s *MemStorage) ListPartners(_ context.Context) ([]*domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Partner, len(s.partners))
	for i, p := range s.partners {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (s *MemStorage) CreatePartner(_ context.Context, partner *domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var maxID int64
	for _, p := range s.partners {
		if id, err := strconv.ParseInt(p.ID, 10, 64); err == nil && id > maxID {
			maxID = id
		}
	}
	partner.ID = strconv.FormatInt(maxID+1, 10)
	partner.Position = len(s.partners)
	cp := *partner
	s.partners = append(s.partners, &cp)
	return nil
}

func (s *MemStorage) UpdatePartner(_ context.Context, id string, partner *domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.partners {
		if p.ID == id {
			partner.ID = id
			partner.Position = p.Position
			cp := *partner
			s.partners[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *MemStorage) DeletePartner(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.partners {
		if p.ID == id {
			s.partners = append(s.partners[:i], s.partners[i+1:]...)
			for j, rest := range s.partners {
				rest.Position = j
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *MemStorage) ReplacePartners(_ context.Context, partners []*domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partners = make([]*domain.Partner, len(partners))
	for i, p := range partners {
		cp := *p
		cp.Position = i
		s.partners[i] = &cp
	}
	return nil
}

// --- VoiceService Methods ---

func (s *MemStorage) ListServices(_ context.Context) ([]*domain.VoiceService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.VoiceService, len(s.services))
	for i, svc := range s.services {
		cp := *svc
		out[i] = &cp
	}
	return out, nil
}

func (s *MemStorage) CreateService(_ context.Context, service *domain.VoiceService) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.serviceID {
		id = s.serviceID + 1
	}
	s.serviceID = id
	service.ID = strconv.FormatInt(id, 10)
	service.Position = len(s.services)
	cp := *service
	s.services = append(s.services, &cp)
	return nil
}

func (s *MemStorage) UpdateService(_ context.Context, id string, service *domain.VoiceService) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			service.ID = id
			service.Position = svc.Position
			cp := *service
			s.services[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *MemStorage) DeleteService(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			for j, rest := range s.services {
				rest.Position = j
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *MemStorage) ReplaceServices(_ context.Context, services []*domain.VoiceService) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = make([]*domain.VoiceService, len(services))
	for i, svc := range services {
		cp := *svc
		cp.Position = i
		s.services[i] = &cp
	}
	return nil
}

// --- Single-document Methods ---

func (s *MemStorage) GetHero(_ context.Context) (*domain.HeroData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hero == nil {
		return nil, repository.ErrNotFound
	}
	cp := *s.hero
	return &cp, nil
}

func (s *MemStorage) PutHero(_ context.Context, hero *domain.HeroData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *hero
	s.hero = &cp
	return nil
}

func (s *MemStorage) GetContact(_ context.Context) (*domain.ContactData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contact == nil {
		return nil, repository.ErrNotFound
	}
	cp := *s.contact
	return &cp, nil
}

func (s *MemStorage) PutContact(_ context.Context, contact *domain.ContactData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *contact
	s.contact = &cp
	return nil
}

// --- ContactMessage Methods ---

func (s *MemStorage) ListMessages(_ context.Context) ([]*domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Новые сообщения первыми
	out := make([]*domain.ContactMessage, len(s.messages))
	for i, m := range s.messages {
		cp := *m
		out[len(s.messages)-1-i] = &cp
	}
	return out, nil
}

func (s *MemStorage) CreateMessage(_ context.Context, message *domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	cp := *message
	s.messages = append(s.messages, &cp)
	return nil
}

func (s *MemStorage) SetMessageRead(_ context.Context, id string, isRead bool) (*domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id {
			m.IsRead = isRead
			cp := *m
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemStorage) DeleteMessage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- Visit Methods ---

func (s *MemStorage) AppendVisit(_ context.Context, visit *domain.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *visit
	s.visits = append(s.visits, &cp)
	return nil
}

func (s *MemStorage) ListVisits(_ context.Context) ([]*domain.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Visit, len(s.visits))
	for i, v := range s.visits {
		cp := *v
		out[i] = &cp
	}
	return out, nil
}

func (s *MemStorage) ListVisitsSince(_ context.Context, since time.Time) ([]*domain.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Visit
	for _, v := range s.visits {
		if !v.Timestamp.Before(since) {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}
