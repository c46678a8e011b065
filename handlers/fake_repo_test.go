package handlers

import (
	"strconv"

	"authportal/models"
)

// fakeUserRepo is an in-memory UserRepository for handler tests. Setting err
// makes every method fail, simulating an unavailable store.
type fakeUserRepo struct {
	users  []*models.User
	nextID int
	err    error
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	user.ID = "id-" + strconv.Itoa(f.nextID)
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetUserByEmailOrUsername(email, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetProfileByID(id string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return &models.Profile{Name: u.Name, Email: u.Email}, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllProfiles() ([]models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profiles := make([]models.Profile, 0, len(f.users))
	for _, u := range f.users {
		profiles = append(profiles, models.Profile{Name: u.Name, Email: u.Email})
	}
	return profiles, nil
}
