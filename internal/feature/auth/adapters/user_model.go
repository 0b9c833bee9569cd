package adapters

import "yoga_storefront/internal/feature/auth/domain/entity"

// UserModel is the GORM model for the `users` collection.
// The document key is the email address; the password column holds the digest only.
type UserModel struct {
	Email     string `gorm:"primaryKey;size:255"`
	Password  string `gorm:"size:255;not null"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Phone     string `gorm:"size:32"`
	// CreatedAt is stored as an ISO8601 string, as written by the mobile client.
	CreatedAt string `gorm:"size:40;not null"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain account.
func (m *UserModel) ToEntity() *entity.Account {
	return &entity.Account{
		Profile: entity.User{
			ID:        m.Email,
			Email:     m.Email,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Phone:     m.Phone,
			CreatedAt: m.CreatedAt,
		},
		Credential: entity.Credential{
			Email:        m.Email,
			PasswordHash: m.Password,
		},
	}
}

// UserModelFromEntity converts a domain account to a GORM model.
func UserModelFromEntity(a *entity.Account) *UserModel {
	return &UserModel{
		Email:     a.Profile.Email,
		Password:  a.Credential.PasswordHash,
		FirstName: a.Profile.FirstName,
		LastName:  a.Profile.LastName,
		Phone:     a.Profile.Phone,
		CreatedAt: a.Profile.CreatedAt,
	}
}
