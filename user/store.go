package user

import (
	"github.com/aguasmedia/gallery/postgres"
	"gorm.io/gorm"
)

// Store is the directory of authorized users, backed by the users table.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// ByEmail looks an authorized user up by the email a verified identity
// carries. Absence surfaces as gallery.ErrNotExist, which login treats as
// denial.
func (s *Store) ByEmail(email string) (User, error) {
	var u User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return User{}, postgres.TranslateError(err)
	}

	return u, nil
}

// ByID fetches a user by its primary key.
func (s *Store) ByID(id uint) (User, error) {
	var u User
	if err := s.db.First(&u, id).Error; err != nil {
		return User{}, postgres.TranslateError(err)
	}

	return u, nil
}

// All fetches every user row.
func (s *Store) All() ([]User, error) {
	var users []User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, postgres.TranslateError(err)
	}

	return users, nil
}

// Create inserts the user, updating it with generated values.
func (s *Store) Create(u *User) error {
	return postgres.TranslateError(s.db.Create(u).Error)
}

// Update saves all fields on the user row.
func (s *Store) Update(u *User) error {
	return postgres.TranslateError(s.db.Save(u).Error)
}

// Delete removes the user row by id.
func (s *Store) Delete(id uint) error {
	res := s.db.Delete(&User{}, id)
	if res.Error != nil {
		return postgres.TranslateError(res.Error)
	}

	if res.RowsAffected == 0 {
		return postgres.TranslateError(gorm.ErrRecordNotFound)
	}

	return nil
}

// Migrations returns the schema migrations the users table requires.
func Migrations() []postgres.Migration {
	return []postgres.Migration{
		{
			Key: "2024-01-01-create-users",
			Executor: func(tx *gorm.DB) error {
				return tx.Exec(`
					CREATE TABLE users (
						id SERIAL PRIMARY KEY,
						created_at timestamptz,
						updated_at timestamptz,
						name text NOT NULL,
						email text NOT NULL,
						role text,
						status text NOT NULL DEFAULT 'active',
						CONSTRAINT users_email_key UNIQUE (email)
					)
				`).Error
			},
		},
	}
}
