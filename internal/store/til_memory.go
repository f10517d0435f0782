package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/models"
	"github.com/google/uuid"
)

type userRecord struct {
	user         models.User
	passwordHash string
	subject      string
}

// TILMemoryRepository keeps the acronyms, categories and users of the stub
// API in memory. Lists are returned in insertion order.
type TILMemoryRepository struct {
	mu sync.RWMutex

	hashKey string
	ids     *utils.UUIDGenerator

	users      map[uuid.UUID]*userRecord
	userOrder  []uuid.UUID
	acronyms   map[uuid.UUID]*models.Acronym
	acrOrder   []uuid.UUID
	categories map[uuid.UUID]*models.Category
	catOrder   []uuid.UUID
	// links maps an acronym id to its attached category ids.
	links map[uuid.UUID][]uuid.UUID
}

// NewTILMemoryRepository returns an empty repository. Passwords are stored
// as HMAC digests keyed with hashKey.
func NewTILMemoryRepository(hashKey string) *TILMemoryRepository {
	return &TILMemoryRepository{
		hashKey:    hashKey,
		ids:        utils.NewUUIDGenerator(),
		users:      make(map[uuid.UUID]*userRecord),
		acronyms:   make(map[uuid.UUID]*models.Acronym),
		categories: make(map[uuid.UUID]*models.Category),
		links:      make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *TILMemoryRepository) CreateUser(_ context.Context, data models.CreateUserData) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usernameTaken(data.Username) {
		return models.User{}, ErrUsernameTaken
	}

	record := r.addUser(data.Name, data.Username)
	record.passwordHash = utils.HashString(data.Password, r.hashKey)
	return record.user, nil
}

// Authenticate returns the user whose username and password match.
func (r *TILMemoryRepository) Authenticate(_ context.Context, username, password string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hash := utils.HashString(password, r.hashKey)
	for _, id := range r.userOrder {
		record := r.users[id]
		if record.user.Username != username {
			continue
		}
		if record.passwordHash == "" || !utils.EqualHash(record.passwordHash, hash) {
			return models.User{}, ErrInvalidCredentials
		}
		return record.user, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// FederatedUser finds the user linked to subject, creating one on first
// sign in. Federated users have no password and cannot use Basic login.
func (r *TILMemoryRepository) FederatedUser(_ context.Context, subject, name, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.userOrder {
		if record := r.users[id]; record.subject == subject {
			return record.user, nil
		}
	}

	if username == "" {
		username = subject
	}
	if name == "" {
		name = username
	}
	if r.usernameTaken(username) {
		return models.User{}, ErrUsernameTaken
	}

	record := r.addUser(name, username)
	record.subject = subject
	return record.user, nil
}

func (r *TILMemoryRepository) Users(_ context.Context) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		users = append(users, r.users[id].user)
	}
	return users
}

func (r *TILMemoryRepository) User(_ context.Context, id uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.users[id]
	if !ok {
		return models.User{}, ErrEntityNotFound
	}
	return record.user, nil
}

func (r *TILMemoryRepository) Acronyms(_ context.Context) []models.Acronym {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acronyms := make([]models.Acronym, 0, len(r.acrOrder))
	for _, id := range r.acrOrder {
		acronyms = append(acronyms, *r.acronyms[id])
	}
	return acronyms
}

// CreateAcronym stores a new acronym owned by userID.
func (r *TILMemoryRepository) CreateAcronym(_ context.Context, userID uuid.UUID, data models.CreateAcronymData) (models.Acronym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return models.Acronym{}, ErrEntityNotFound
	}

	id := r.ids.Generate()
	acronym := &models.Acronym{
		ID:    &id,
		Short: data.Short,
		Long:  data.Long,
		User:  &models.UserRef{ID: userID},
	}
	r.acronyms[id] = acronym
	r.acrOrder = append(r.acrOrder, id)
	return *acronym, nil
}

// UpdateAcronym replaces the fields of an acronym and makes userID its
// owner.
func (r *TILMemoryRepository) UpdateAcronym(_ context.Context, id, userID uuid.UUID, data models.CreateAcronymData) (models.Acronym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acronym, ok := r.acronyms[id]
	if !ok {
		return models.Acronym{}, ErrEntityNotFound
	}

	acronym.Short = data.Short
	acronym.Long = data.Long
	acronym.User = &models.UserRef{ID: userID}
	return *acronym, nil
}

func (r *TILMemoryRepository) DeleteAcronym(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.acronyms[id]; !ok {
		return ErrEntityNotFound
	}

	delete(r.acronyms, id)
	delete(r.links, id)
	r.acrOrder = slices.DeleteFunc(r.acrOrder, func(v uuid.UUID) bool { return v == id })
	return nil
}

// AcronymUser returns the owner of an acronym.
func (r *TILMemoryRepository) AcronymUser(_ context.Context, id uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acronym, ok := r.acronyms[id]
	if !ok || acronym.User == nil {
		return models.User{}, ErrEntityNotFound
	}
	record, ok := r.users[acronym.User.ID]
	if !ok {
		return models.User{}, ErrEntityNotFound
	}
	return record.user, nil
}

// AcronymCategories returns the categories attached to an acronym in the
// order they were attached.
func (r *TILMemoryRepository) AcronymCategories(_ context.Context, id uuid.UUID) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.acronyms[id]; !ok {
		return nil, ErrEntityNotFound
	}

	categories := make([]models.Category, 0, len(r.links[id]))
	for _, categoryID := range r.links[id] {
		categories = append(categories, *r.categories[categoryID])
	}
	return categories, nil
}

// AttachCategory links a category to an acronym. Attaching twice is a no-op.
func (r *TILMemoryRepository) AttachCategory(_ context.Context, acronymID, categoryID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPair(acronymID, categoryID); err != nil {
		return err
	}
	if !slices.Contains(r.links[acronymID], categoryID) {
		r.links[acronymID] = append(r.links[acronymID], categoryID)
	}
	return nil
}

// DetachCategory removes a link. Detaching an unlinked category is a no-op.
func (r *TILMemoryRepository) DetachCategory(_ context.Context, acronymID, categoryID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPair(acronymID, categoryID); err != nil {
		return err
	}
	r.links[acronymID] = slices.DeleteFunc(r.links[acronymID], func(v uuid.UUID) bool { return v == categoryID })
	return nil
}

func (r *TILMemoryRepository) Categories(_ context.Context) []models.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, 0, len(r.catOrder))
	for _, id := range r.catOrder {
		categories = append(categories, *r.categories[id])
	}
	return categories
}

func (r *TILMemoryRepository) CreateCategory(_ context.Context, data models.CreateCategoryData) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.ids.Generate()
	category := &models.Category{ID: &id, Name: data.Name}
	r.categories[id] = category
	r.catOrder = append(r.catOrder, id)
	return *category, nil
}

func (r *TILMemoryRepository) checkPair(acronymID, categoryID uuid.UUID) error {
	if _, ok := r.acronyms[acronymID]; !ok {
		return ErrEntityNotFound
	}
	if _, ok := r.categories[categoryID]; !ok {
		return ErrEntityNotFound
	}
	return nil
}

func (r *TILMemoryRepository) usernameTaken(username string) bool {
	for _, record := range r.users {
		if record.user.Username == username {
			return true
		}
	}
	return false
}

func (r *TILMemoryRepository) addUser(name, username string) *userRecord {
	id := r.ids.Generate()
	record := &userRecord{
		user: models.User{ID: &id, Name: name, Username: username},
	}
	r.users[id] = record
	r.userOrder = append(r.userOrder, id)
	return record
}
