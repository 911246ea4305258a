package services

import (
	"sort"
	"time"

	"gorm.io/datatypes"

	"inakat_backend/internal/models"
	"inakat_backend/internal/repositories"
)

// In-memory repository fakes so service behavior can be tested without a
// database. Only the behaviors the services rely on are modeled.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint

	lastLoginErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, err := f.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(userID uint, at time.Time) error {
	if f.lastLoginErr != nil {
		return f.lastLoginErr
	}
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.LastLogin = &at
	return nil
}

func (f *fakeUserRepo) SetActive(userID uint, active bool) error {
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

func (f *fakeUserRepo) FindByRole(role models.UserRole, limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeSpecialtyRepo struct {
	specialties map[uint]*models.Specialty
	nextID      uint
}

func newFakeSpecialtyRepo() *fakeSpecialtyRepo {
	return &fakeSpecialtyRepo{specialties: map[uint]*models.Specialty{}, nextID: 1}
}

func (f *fakeSpecialtyRepo) add(s *models.Specialty) *models.Specialty {
	s.ID = f.nextID
	f.nextID++
	f.specialties[s.ID] = s
	return s
}

func (f *fakeSpecialtyRepo) FindAll(activeOnly bool) ([]models.Specialty, error) {
	var out []models.Specialty
	for _, s := range f.specialties {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeSpecialtyRepo) FindByID(id uint) (*models.Specialty, error) {
	if s, ok := f.specialties[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repositories.ErrSpecialtyNotFound
}

func (f *fakeSpecialtyRepo) ExistsByName(name string, excludeID uint) (bool, error) {
	// Exact comparison, matching the case-sensitive unique index.
	for _, s := range f.specialties {
		if s.ID != excludeID && s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSpecialtyRepo) ExistsBySlug(slug string, excludeID uint) (bool, error) {
	for _, s := range f.specialties {
		if s.ID != excludeID && s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSpecialtyRepo) MaxSortOrder() (int, error) {
	max := 0
	for _, s := range f.specialties {
		if s.SortOrder > max {
			max = s.SortOrder
		}
	}
	return max, nil
}

func (f *fakeSpecialtyRepo) Create(s *models.Specialty) error {
	if taken, _ := f.ExistsByName(s.Name, 0); taken {
		return repositories.ErrSpecialtyDuplicate
	}
	if taken, _ := f.ExistsBySlug(s.Slug, 0); taken {
		return repositories.ErrSpecialtyDuplicate
	}
	f.add(s)
	return nil
}

func (f *fakeSpecialtyRepo) Updates(id uint, fields map[string]interface{}) (*models.Specialty, error) {
	s, ok := f.specialties[id]
	if !ok {
		return nil, repositories.ErrSpecialtyNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			s.Name = value.(string)
		case "slug":
			s.Slug = value.(string)
		case "description":
			s.Description, _ = value.(*string)
		case "icon":
			s.Icon, _ = value.(*string)
		case "color":
			s.Color = value.(string)
		case "subcategories":
			s.Subcategories = value.(datatypes.JSON)
		case "sort_order":
			s.SortOrder = value.(int)
		case "is_active":
			s.IsActive = value.(bool)
		}
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSpecialtyRepo) Delete(id uint) error {
	if _, ok := f.specialties[id]; !ok {
		return repositories.ErrSpecialtyNotFound
	}
	delete(f.specialties, id)
	return nil
}

type fakeCountRepo struct {
	counts map[string]int64
}

func (f *fakeCountRepo) CountByProfile(profile string) (int64, error) {
	return f.counts[profile], nil
}

// fakePricingRepo, fakeCandidateRepo and fakeJobRepo only need
// CountByProfile for the specialty deletion checks; the remaining methods
// are unused stubs.

type fakePricingRepo struct{ fakeCountRepo }

func (f *fakePricingRepo) FindAll(bool) ([]models.PricingRule, error) { return nil, nil }
func (f *fakePricingRepo) FindByID(uint) (*models.PricingRule, error) {
	return nil, repositories.ErrPricingRuleNotFound
}
func (f *fakePricingRepo) Create(*models.PricingRule) error { return nil }
func (f *fakePricingRepo) Updates(uint, map[string]interface{}) (*models.PricingRule, error) {
	return nil, repositories.ErrPricingRuleNotFound
}
func (f *fakePricingRepo) Delete(uint) error { return nil }

type fakeCandidateRepo struct{ fakeCountRepo }

func (f *fakeCandidateRepo) FindAll(int, int) ([]models.Candidate, int64, error) {
	return nil, 0, nil
}
func (f *fakeCandidateRepo) FindByID(uint) (*models.Candidate, error) {
	return nil, repositories.ErrCandidateNotFound
}
func (f *fakeCandidateRepo) Create(*models.Candidate) error { return nil }

type fakeJobRepo struct{ fakeCountRepo }

func (f *fakeJobRepo) FindAll(bool, int, int) ([]models.Job, int64, error) { return nil, 0, nil }
func (f *fakeJobRepo) FindByID(uint) (*models.Job, error) {
	return nil, repositories.ErrJobNotFound
}
func (f *fakeJobRepo) Create(*models.Job) error { return nil }
func (f *fakeJobRepo) Updates(uint, map[string]interface{}) (*models.Job, error) {
	return nil, repositories.ErrJobNotFound
}
func (f *fakeJobRepo) Delete(uint) error { return nil }
