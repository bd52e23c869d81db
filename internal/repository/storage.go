package repository

import (
	"VoiceTalent-Backend/internal/domain"
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("record not found")
)

type Storage interface {
	// Project methods (адресация по индексу в отсортированном списке)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) error
	UpdateProjectAt(ctx context.Context, index int, project *domain.Project) error
	DeleteProjectAt(ctx context.Context, index int) error
	ReplaceProjects(ctx context.Context, projects []*domain.Project) error

	// Partner methods
	ListPartners(ctx context.Context) ([]*domain.Partner, error)
	CreatePartner(ctx context.Context, partner *domain.Partner) error
	UpdatePartner(ctx context.Context, id string, partner *domain.Partner) error
	DeletePartner(ctx context.Context, id string) error
	ReplacePartners(ctx context.Context, partners []*domain.Partner) error

	// VoiceService methods
	ListServices(ctx context.Context) ([]*domain.VoiceService, error)
	CreateService(ctx context.Context, service *domain.VoiceService) error
	UpdateService(ctx context.Context, id string, service *domain.VoiceService) error
	DeleteService(ctx context.Context, id string) error
	ReplaceServices(ctx context.Context, services []*domain.VoiceService) error

	// Single-document methods
	GetHero(ctx context.Context) (*domain.HeroData, error)
	PutHero(ctx context.Context, hero *domain.HeroData) error
	GetContact(ctx context.Context) (*domain.ContactData, error)
	PutContact(ctx context.Context, contact *domain.ContactData) error

	// ContactMessage methods
	ListMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	CreateMessage(ctx context.Context, message *domain.ContactMessage) error
	SetMessageRead(ctx context.Context, id string, isRead bool) (*domain.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error

	// Visit methods (append-only)
	AppendVisit(ctx context.Context, visit *domain.Visit) error
	ListVisits(ctx context.Context) ([]*domain.Visit, error)
	ListVisitsSince(ctx context.Context, since time.Time) ([]*domain.Visit, error)
}
