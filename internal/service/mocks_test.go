package service

import (
	"context"
	"sync"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// memUsers is an in-memory repository.Users.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.User
	err    error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]*models.User{}}
}

func (m *memUsers) find(match func(*models.User) bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Create(ctx context.Context, u models.User) (int64, error) {
	if dup, _ := m.find(func(x *models.User) bool {
		return x.Email == u.Email || x.Nickname == u.Nickname || (x.Provider == u.Provider && x.ProviderID == u.ProviderID)
	}); dup != nil {
		return 0, repository.ErrDuplicate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now().UTC()
	m.byID[u.ID] = &u
	return u.ID, nil
}

func (m *memUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.ID == id })
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Email == email })
}

func (m *memUsers) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Nickname == nickname })
}

func (m *memUsers) GetByProvider(ctx context.Context, provider, providerID string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Provider == provider && u.ProviderID == providerID })
}

func (m *memUsers) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return repository.ErrNoRows
	}
	u.Nickname = nickname
	return nil
}

func (m *memUsers) SetRole(ctx context.Context, id int64, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return repository.ErrNoRows
	}
	u.Role = role
	return nil
}

func (m *memUsers) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

// fakeRanking is an in-memory repository.Ranking.
type fakeRanking struct {
	mu     sync.Mutex
	scores map[int64]float64
	err    error
}

func newFakeRanking() *fakeRanking {
	return &fakeRanking{scores: map[int64]float64{}}
}

func (f *fakeRanking) IncrBy(ctx context.Context, userID int64, delta float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.scores[userID] += delta
	return f.scores[userID], nil
}

func (f *fakeRanking) Top(ctx context.Context, n int) ([]models.RankEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.RankEntry, 0, len(f.scores))
	for id, s := range f.scores {
		out = append(out, models.RankEntry{UserID: id, Score: s})
	}
	// simple selection sort, descending
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].Score > out[i].Score {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Rank = int64(i + 1)
	}
	return out, nil
}

func (f *fakeRanking) Rank(ctx context.Context, userID int64) (*models.RankEntry, error) {
	top, err := f.Top(ctx, 1<<30)
	if err != nil {
		return nil, err
	}
	for _, e := range top {
		if e.UserID == userID {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeRanking) Remove(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.scores, userID)
	return f.err
}
