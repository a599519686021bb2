package database

import (
	"strings"
	"time"

	"github.com/fbrandt/pigeon/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return ErrEmptyUsername
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	return d.db.Create(user).Error
}

func (d *Database) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := d.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
