package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/repository"
)

// In-memory repository fakes mirroring the SQL semantics closely enough for
// service tests. Writes assign ids and timestamps the way the store would.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	clock int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) next() time.Time {
	r.clock++
	return time.Unix(1700000000+r.clock, 0)
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	user.Email = repository.NormalizeEmail(user.Email)
	now := r.next()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = r.next()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = repository.NormalizeEmail(email)
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByIDAndRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.User
	for _, user := range r.users {
		if user.Role == role {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*domain.Property
	clock      int64
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]*domain.Property)}
}

func (r *fakePropertyRepo) next() time.Time {
	r.clock++
	return time.Unix(1700000000+r.clock, 0)
}

func (r *fakePropertyRepo) Create(_ context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property.ID = uuid.NewString()
	now := r.next()
	property.CreatedAt = now
	property.UpdatedAt = now
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) Update(_ context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[property.ID]; !ok {
		return pgx.ErrNoRows
	}
	property.UpdatedAt = r.next()
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id string) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *property
	return &clone, nil
}

func matches(p *domain.Property, f repository.PropertyFilter) bool {
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.City != nil && strings.TrimSpace(*f.City) != "" {
		needle := strings.ToLower(strings.TrimSpace(*f.City))
		if !strings.Contains(strings.ToLower(p.Location.City), needle) {
			return false
		}
	}
	if f.Bedrooms != nil && p.Features.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func (r *fakePropertyRepo) matching(f repository.PropertyFilter) []domain.Property {
	var result []domain.Property
	for _, property := range r.properties {
		if matches(property, f) {
			result = append(result, *property)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (r *fakePropertyRepo) ListWithFilter(_ context.Context, filter repository.PropertyFilter, page repository.PageRequest) ([]domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(filter)
	page = page.Normalize()
	offset := page.Offset()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakePropertyRepo) CountWithFilter(_ context.Context, filter repository.PropertyFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.matching(filter))), nil
}

func (r *fakePropertyRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	featured := true
	return r.ListWithFilter(ctx, repository.PropertyFilter{Featured: &featured}, repository.PageRequest{Page: 1, Limit: limit})
}

func (r *fakePropertyRepo) ListAll(ctx context.Context) ([]domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matching(repository.PropertyFilter{}), nil
}

func (r *fakePropertyRepo) CountByStatus(_ context.Context, status domain.ListingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, property := range r.properties {
		if property.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakePropertyRepo) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.properties)), nil
}

type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[string]*domain.Inquiry
	clock     int64
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[string]*domain.Inquiry)}
}

func (r *fakeInquiryRepo) Create(_ context.Context, inquiry *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry.ID = uuid.NewString()
	r.clock++
	inquiry.CreatedAt = time.Unix(1700000000+r.clock, 0)
	clone := *inquiry
	r.inquiries[inquiry.ID] = &clone
	return nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id string) (*domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *inquiry
	return &clone, nil
}

func (r *fakeInquiryRepo) List(_ context.Context) ([]domain.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Inquiry
	for _, inquiry := range r.inquiries {
		result = append(result, *inquiry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeInquiryRepo) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	r.mu.Lock()
	if inquiry, ok := r.inquiries[id]; ok {
		inquiry.Status = status
		r.mu.Unlock()
		return r.GetByID(ctx, id)
	}
	r.mu.Unlock()
	return nil, pgx.ErrNoRows
}

func (r *fakeInquiryRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.inquiries)), nil
}

func (r *fakeInquiryRepo) CountByStatus(_ context.Context, status domain.InquiryStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, inquiry := range r.inquiries {
		if inquiry.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeRevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newFakeRevocationList() *fakeRevocationList {
	return &fakeRevocationList{revoked: make(map[string]time.Time)}
}

func (l *fakeRevocationList) Revoke(_ context.Context, tokenID string, until time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[tokenID] = until
	return nil
}

func (l *fakeRevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}
