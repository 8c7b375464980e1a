package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/twpayne/go-geom"

	"urban_access/internal/apperr"
	"urban_access/internal/models"
)

// memStore backs UserRepository and IncidentRepository with maps for workflow tests.
type memStore struct {
	mu          sync.Mutex
	users       map[uint]models.User
	incidents   map[uint]models.Incident
	validations []models.Validation
	categories  map[uint]models.Category
	nextID      uint
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[uint]models.User),
		incidents:  make(map[uint]models.Incident),
		categories: map[uint]models.Category{1: {ID: 1, Name: "Calçada Danificada"}},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperr.ErrDuplicateEmail
		}
		if u.NationalID == user.NationalID {
			return apperr.ErrDuplicateNationalID
		}
	}
	user.ID = r.id()
	r.users[user.ID] = *user
	return nil
}

func (r memUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	return &u, nil
}

func (r memUsers) GetByEmailFold(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (r memUsers) ExistsByEmail(_ context.Context, email string, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) ExistsByNationalID(_ context.Context, nationalID string, excludeID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.NationalID == nationalID && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) UpdateProfile(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[user.ID]
	if !ok {
		return apperr.ErrUserNotFound
	}
	u.Name, u.Phone = user.Name, user.Phone
	r.users[u.ID] = u
	return nil
}

func (r memUsers) UpdatePasswordHash(_ context.Context, id uint, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperr.ErrUserNotFound
	}
	u.PasswordHash = hash
	r.users[id] = u
	return nil
}

type memIncidents struct{ *memStore }

func (r memIncidents) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[incident.CategoryID]; !ok {
		return apperr.ErrUnknownCategory
	}
	incident.ID = r.id()
	r.incidents[incident.ID] = *incident
	return nil
}

func (r memIncidents) GetByID(_ context.Context, id uint) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inc, ok := r.incidents[id]
	if !ok {
		return nil, apperr.ErrIncidentNotFound
	}
	cat := r.categories[inc.CategoryID]
	inc.Category = &cat
	if reporter, ok := r.users[inc.ReporterID]; ok {
		inc.Reporter = &reporter
	}
	inc.Validations = nil
	for _, v := range r.validations {
		if v.IncidentID == id {
			validator := r.users[v.ValidatorID]
			v.Validator = &validator
			inc.Validations = append(inc.Validations, v)
		}
	}
	return &inc, nil
}

func (r memIncidents) list(keep func(models.Incident) bool) []models.Incident {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Incident, 0)
	for _, inc := range r.incidents {
		if keep(inc) {
			out = append(out, inc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r memIncidents) ListAll(context.Context) ([]models.Incident, error) {
	return r.list(func(models.Incident) bool { return true }), nil
}

func (r memIncidents) ListByReporter(_ context.Context, reporterID uint) ([]models.Incident, error) {
	return r.list(func(inc models.Incident) bool { return inc.ReporterID == reporterID }), nil
}

func (r memIncidents) ListWithinBounds(_ context.Context, bounds *geom.Bounds) ([]models.Incident, error) {
	return r.list(func(inc models.Incident) bool {
		return bounds.OverlapsPoint(geom.XY, geom.Coord{inc.Longitude, inc.Latitude})
	}), nil
}

func (r memIncidents) ApplyValidation(_ context.Context, v *models.Validation, status models.IncidentStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inc, ok := r.incidents[v.IncidentID]
	if !ok {
		return false, nil
	}
	v.ID = r.id()
	r.validations = append(r.validations, *v)
	inc.Status = status
	r.incidents[inc.ID] = inc
	return true, nil
}

func (r memIncidents) UpdateImageURL(_ context.Context, id uint, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inc, ok := r.incidents[id]
	if !ok {
		return apperr.ErrIncidentNotFound
	}
	inc.ImageURL = &imageURL
	r.incidents[id] = inc
	return nil
}
