package api

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// tick hands out strictly increasing timestamps so ordering by creation time is deterministic.
type tick struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tick) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		c.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	c.now = c.now.Add(time.Second)
	return c.now
}

type memAdmins struct {
	mu     sync.Mutex
	admins map[string]models.Admin
}

func newMemAdmins() *memAdmins {
	return &memAdmins{admins: map[string]models.Admin{}}
}

func (s *memAdmins) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[username]
	if !ok {
		return nil, errs.NewNotFound("admin")
	}
	return &admin, nil
}

func (s *memAdmins) Add(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[admin.Username]; ok {
		return errs.NewAlreadyExists("admin")
	}
	admin.ID = uuid.New()
	s.admins[admin.Username] = *admin
	return nil
}

func (s *memAdmins) Replace(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin.ID = uuid.New()
	s.admins = map[string]models.Admin{admin.Username: *admin}
	return nil
}

type memProjects struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.Project
	clock tick
}

func newMemProjects() *memProjects {
	return &memProjects{items: map[uuid.UUID]models.Project{}}
}

func (s *memProjects) FindAll(context.Context) ([]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := []*models.Project{}
	for _, p := range s.items {
		p := p
		projects = append(projects, &p)
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].DisplayOrder != projects[j].DisplayOrder {
			return projects[i].DisplayOrder < projects[j].DisplayOrder
		}
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

func (s *memProjects) FindByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFound("project")
	}
	return &p, nil
}

func (s *memProjects) Add(_ context.Context, project *models.Project) error {
	project.ID = uuid.New()
	project.CreatedAt = s.clock.next()
	project.UpdatedAt = project.CreatedAt
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[project.ID] = *project
	return nil
}

func (s *memProjects) Update(_ context.Context, id uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFound("project")
	}
	patch.Apply(&project)
	if err := project.Validate(); err != nil {
		return nil, err
	}
	project.UpdatedAt = s.clock.next()
	s.items[id] = project
	return &project, nil
}

func (s *memProjects) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

type memInquiries struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.Inquiry
	clock tick
}

func newMemInquiries() *memInquiries {
	return &memInquiries{items: map[uuid.UUID]models.Inquiry{}}
}

func (s *memInquiries) FindAll(context.Context) ([]*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inquiries := []*models.Inquiry{}
	for _, i := range s.items {
		i := i
		inquiries = append(inquiries, &i)
	}
	sort.Slice(inquiries, func(a, b int) bool {
		return inquiries[a].CreatedAt.After(inquiries[b].CreatedAt)
	})
	return inquiries, nil
}

func (s *memInquiries) FindByID(_ context.Context, id uuid.UUID) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFound("inquiry")
	}
	return &i, nil
}

func (s *memInquiries) Add(_ context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = uuid.New()
	inquiry.CreatedAt = s.clock.next()
	inquiry.UpdatedAt = inquiry.CreatedAt
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[inquiry.ID] = *inquiry
	return nil
}

func (s *memInquiries) Update(_ context.Context, id uuid.UUID, patch models.InquiryPatch) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inquiry, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFound("inquiry")
	}
	patch.Apply(&inquiry)
	if err := inquiry.Validate(); err != nil {
		return nil, err
	}
	inquiry.UpdatedAt = s.clock.next()
	s.items[id] = inquiry
	return &inquiry, nil
}

func (s *memInquiries) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *memInquiries) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type memProfile struct {
	mu      sync.Mutex
	profile *models.Profile
	writes  int
	clock   tick
}

func (s *memProfile) FindFirst(context.Context) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, errs.NewNotFound("profile")
	}
	p := *s.profile
	return &p, nil
}

func (s *memProfile) Upsert(_ context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		s.profile = &models.Profile{ID: models.ProfileID, CreatedAt: s.clock.next()}
	}
	patch.Apply(s.profile)
	s.profile.UpdatedAt = s.clock.next()
	s.writes++
	p := *s.profile
	return &p, nil
}

type failingStore struct{}

func (failingStore) FindAll(context.Context) ([]*models.Project, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) FindByID(context.Context, uuid.UUID) (*models.Project, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Add(context.Context, *models.Project) error {
	return errors.New("connection refused")
}

func (failingStore) Update(context.Context, uuid.UUID, models.ProjectPatch) (*models.Project, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Delete(context.Context, uuid.UUID) error {
	return errors.New("connection refused")
}

type recordingNotifier struct {
	mu        sync.Mutex
	inquiries []models.Inquiry
}

func (n *recordingNotifier) Notify(inquiry models.Inquiry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inquiries = append(n.inquiries, inquiry)
}

func (n *recordingNotifier) notified() []models.Inquiry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Inquiry(nil), n.inquiries...)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
