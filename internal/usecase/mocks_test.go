package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"naija-barter/internal/data/entity"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

// fakeUserRepo is an in-memory UserRepository. All methods copy entities in
// and out so callers never share memory with the store, and a mutex keeps
// the attempt counter honest under concurrent verifies.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) put(user *entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *user
	f.users[user.ID] = &clone
}

func (f *fakeUserRepo) get(id string) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	clone := *u
	return &clone
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.put(user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return f.get(id), nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsID(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, search, orderBy string, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.User
	for _, u := range f.users {
		if !u.IsActive || u.IsSuspended {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context, search string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, u := range f.users {
		if !u.IsActive || u.IsSuspended {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return fmt.Errorf("user not found")
	}
	stored.Image = user.Image
	stored.Name = user.Name
	stored.Phone = user.Phone
	stored.Username = user.Username
	stored.DOB = user.DOB
	stored.Location = user.Location
	stored.BusinessName = user.BusinessName
	stored.RegistrationNo = user.RegistrationNo
	stored.IsBusiness = user.IsBusiness
	stored.UpdatedAt = user.UpdatedAt
	return nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.IsActive = false
	}
	return nil
}

func (f *fakeUserRepo) SetOTP(ctx context.Context, id string, otp *string, expiry *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	u.OTP = otp
	u.OTPExpiry = expiry
	u.OTPTries = 0
	return nil
}

func (f *fakeUserRepo) IncrementOTPTries(ctx context.Context, id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return 0, fmt.Errorf("user not found")
	}
	u.OTPTries++
	return u.OTPTries, nil
}

func (f *fakeUserRepo) SetEmailConfirmed(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.EmailConfirmed = true
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

// fakeMailer records outgoing mail and can be told to fail.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	Subject string
	Body    string
	To      string
}

func (m *fakeMailer) Send(subject, body, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("smtp: connection refused")
	}
	m.sent = append(m.sent, sentMail{Subject: subject, Body: body, To: to})
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *fakeMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

type fixture struct {
	users  *fakeUserRepo
	repo   *repository.Repository
	mail   *fakeMailer
	config *utils.Config
	otp    OTPService
	auth   AuthService
	user   UserService
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	repo := &repository.Repository{User: users}
	mail := &fakeMailer{}
	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
		OTP: utils.OTPConfig{Length: 4, ValidityHours: 24},
	}
	log := zap.NewNop()

	otp := NewOTPService(users, log)
	auth := NewAuthService(repo, otp, mail, config, log)
	user := NewUserService(repo, auth, log)

	return &fixture{
		users:  users,
		repo:   repo,
		mail:   mail,
		config: config,
		otp:    otp,
		auth:   auth,
		user:   user,
	}
}

// seedUser stores an active, confirmed account with the given password.
func (f *fixture) seedUser(id, email, password string) *entity.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	user := &entity.User{
		ShortBase: entity.ShortBase{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:          email,
		Name:           "Test User",
		Phone:          "08012345678",
		Username:       "testuser-" + id,
		IsActive:       true,
		EmailConfirmed: true,
		PasswordHash:   hash,
	}
	f.users.put(user)
	return user
}
