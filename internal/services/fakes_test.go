package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nvoronova/bookshelf-backend/internal/models"
	repo "github.com/nvoronova/bookshelf-backend/internal/repository"
)

// In-memory repository fakes. They mirror the postgres semantics the
// services rely on: ErrNotFound on a miss, partial patches, NULL-on-empty
// for optional text, and list/count sharing one filter pass.

type fakeBooks struct {
	mu          sync.Mutex
	rows        map[string]models.Book
	createCalls int
}

func newFakeBooks() *fakeBooks { return &fakeBooks{rows: map[string]models.Book{}} }

func (f *fakeBooks) Create(_ context.Context, in models.CreateBookInput) (models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	now := time.Now().UTC()
	b := models.Book{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Author:        in.Author,
		PublishedYear: in.PublishedYear,
		Genre:         in.Genre,
		Description:   in.Description,
		PageCount:     in.PageCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.rows[b.ID] = b
	return b, nil
}

func (f *fakeBooks) GetByID(_ context.Context, id string) (models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.rows[id]
	if !ok {
		return models.Book{}, repo.ErrNotFound
	}
	return b, nil
}

func (f *fakeBooks) Patch(_ context.Context, id string, in models.UpdateBookInput) (models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.rows[id]
	if !ok {
		return models.Book{}, repo.ErrNotFound
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.PublishedYear != nil {
		b.PublishedYear = *in.PublishedYear
	}
	if in.Genre != nil {
		b.Genre = *in.Genre
	}
	if in.Description != nil {
		if *in.Description == "" {
			b.Description = nil
		} else {
			v := *in.Description
			b.Description = &v
		}
	}
	if in.PageCount != nil {
		b.PageCount = in.PageCount
	}
	b.UpdatedAt = time.Now().UTC()
	f.rows[id] = b
	return b, nil
}

func (f *fakeBooks) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeBooks) ListWithCount(_ context.Context, filters models.BookFilters, limit, offset int) ([]models.Book, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Book
	for _, b := range f.rows {
		if q := strings.ToLower(strings.TrimSpace(filters.Q)); q != "" {
			if !strings.Contains(strings.ToLower(b.Title), q) && !strings.Contains(strings.ToLower(b.Author), q) {
				continue
			}
		}
		if filters.Genre != nil && b.Genre != *filters.Genre {
			continue
		}
		if filters.YearFrom != nil && b.PublishedYear < *filters.YearFrom {
			continue
		}
		if filters.YearTo != nil && b.PublishedYear > *filters.YearTo {
			continue
		}
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Title != all[j].Title {
			return all[i].Title < all[j].Title
		}
		return all[i].ID < all[j].ID
	})
	total := len(all)
	if offset >= total {
		return []models.Book{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type fakeReviews struct {
	mu   sync.Mutex
	rows map[string]models.Review
}

func newFakeReviews() *fakeReviews { return &fakeReviews{rows: map[string]models.Review{}} }

func (f *fakeReviews) Create(_ context.Context, bookID string, in models.CreateReviewInput) (models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv := models.Review{
		ID:        uuid.NewString(),
		BookID:    bookID,
		Rating:    in.Rating,
		Text:      in.Text,
		CreatedAt: time.Now().UTC(),
	}
	f.rows[rv.ID] = rv
	return rv, nil
}

func (f *fakeReviews) GetByID(_ context.Context, id string) (models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv, ok := f.rows[id]
	if !ok {
		return models.Review{}, repo.ErrNotFound
	}
	return rv, nil
}

func (f *fakeReviews) Patch(_ context.Context, id string, in models.UpdateReviewInput) (models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv, ok := f.rows[id]
	if !ok {
		return models.Review{}, repo.ErrNotFound
	}
	if in.Rating != nil {
		rv.Rating = *in.Rating
	}
	if in.Text != nil {
		if *in.Text == "" {
			rv.Text = nil
		} else {
			v := *in.Text
			rv.Text = &v
		}
	}
	f.rows[id] = rv
	return rv, nil
}

func (f *fakeReviews) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeReviews) ListWithCount(_ context.Context, filters models.ReviewFilters, limit, offset int) ([]models.Review, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Review
	for _, rv := range f.rows {
		if filters.BookID != "" && rv.BookID != filters.BookID {
			continue
		}
		all = append(all, rv)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset >= total {
		return []models.Review{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type fakeUsers struct {
	mu          sync.Mutex
	rows        map[string]models.User
	createCalls int
}

func newFakeUsers() *fakeUsers { return &fakeUsers{rows: map[string]models.User{}} }

func (f *fakeUsers) Create(_ context.Context, username, passwordHash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	now := time.Now().UTC()
	u := models.User{
		ID:             uuid.NewString(),
		Username:       username,
		IsActive:       true,
		HashedPassword: passwordHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.rows[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

func (f *fakeUsers) Patch(_ context.Context, id string, in models.UpdateUserInput) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.UpdatedAt = time.Now().UTC()
	f.rows[id] = u
	return u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeUsers) ListWithCount(_ context.Context, filters models.UserFilters, limit, offset int) ([]models.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.User
	for _, u := range f.rows {
		if q := strings.ToLower(strings.TrimSpace(filters.Q)); q != "" && !strings.Contains(strings.ToLower(u.Username), q) {
			continue
		}
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	total := len(all)
	if offset >= total {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeUsers) UpdatePasswordHash(_ context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.HashedPassword = passwordHash
	f.rows[id] = u
	return nil
}

type fakeItems struct {
	mu   sync.Mutex
	rows map[string]models.Item
}

func newFakeItems() *fakeItems { return &fakeItems{rows: map[string]models.Item{}} }

func (f *fakeItems) Create(_ context.Context, userID string, in models.CreateItemInput) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := models.Item{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
	f.rows[it.ID] = it
	return it, nil
}

func (f *fakeItems) GetByID(_ context.Context, id string) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.rows[id]
	if !ok {
		return models.Item{}, repo.ErrNotFound
	}
	return it, nil
}

func (f *fakeItems) Patch(_ context.Context, id string, in models.UpdateItemInput) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.rows[id]
	if !ok {
		return models.Item{}, repo.ErrNotFound
	}
	if in.Title != nil {
		it.Title = *in.Title
	}
	if in.Description != nil {
		if *in.Description == "" {
			it.Description = nil
		} else {
			v := *in.Description
			it.Description = &v
		}
	}
	f.rows[id] = it
	return it, nil
}

func (f *fakeItems) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeItems) ListWithCount(_ context.Context, filters models.ItemFilters, limit, offset int) ([]models.Item, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Item
	for _, it := range f.rows {
		if filters.UserID != "" && it.UserID != filters.UserID {
			continue
		}
		if q := strings.ToLower(strings.TrimSpace(filters.Q)); q != "" && !strings.Contains(strings.ToLower(it.Title), q) {
			continue
		}
		all = append(all, it)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset >= total {
		return []models.Item{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type fakeRoles struct {
	mu          sync.Mutex
	byName      map[string]models.Role
	links       map[string]map[string]bool // userID -> roleID set
	createCalls int
	linkInserts int
}

func newFakeRoles() *fakeRoles {
	return &fakeRoles{byName: map[string]models.Role{}, links: map[string]map[string]bool{}}
}

func (f *fakeRoles) Create(_ context.Context, name string, description *string) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	role := models.Role{ID: uuid.NewString(), Name: name, Description: description}
	f.byName[name] = role
	return role, nil
}

func (f *fakeRoles) GetByName(_ context.Context, name string) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.byName[name]
	if !ok {
		return models.Role{}, repo.ErrNotFound
	}
	return role, nil
}

func (f *fakeRoles) EnsureLink(_ context.Context, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.links[userID]
	if !ok {
		set = map[string]bool{}
		f.links[userID] = set
	}
	if !set[roleID] {
		set[roleID] = true
		f.linkInserts++
	}
	return nil
}

func (f *fakeRoles) NamesForUser(_ context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name, role := range f.byName {
		if f.links[userID][role.ID] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

type fakeJobs struct {
	mu          sync.Mutex
	rows        map[string]models.Job
	transitions map[string][]models.JobStatus
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{rows: map[string]models.Job{}, transitions: map[string][]models.JobStatus{}}
}

func (f *fakeJobs) Create(_ context.Context, title string) (models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := models.Job{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    models.JobPending,
		CreatedAt: time.Now().UTC(),
	}
	f.rows[j.ID] = j
	return j, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id string) (models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.rows[id]
	if !ok {
		return models.Job{}, repo.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobs) SetStatus(_ context.Context, id string, status models.JobStatus, finishedAt *time.Time, errMsg *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.rows[id]
	if !ok {
		return repo.ErrNotFound
	}
	j.Status = status
	if finishedAt != nil {
		j.FinishedAt = finishedAt
	}
	if errMsg != nil {
		j.Error = errMsg
	}
	f.rows[id] = j
	f.transitions[id] = append(f.transitions[id], status)
	return nil
}

func (f *fakeJobs) ListWithCount(_ context.Context, filters models.JobFilters, limit, offset int) ([]models.Job, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Job
	for _, j := range f.rows {
		if filters.Status != nil && j.Status != *filters.Status {
			continue
		}
		all = append(all, j)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset >= total {
		return []models.Job{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeJobs) recorded(id string) []models.JobStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.JobStatus, len(f.transitions[id]))
	copy(out, f.transitions[id])
	return out
}
