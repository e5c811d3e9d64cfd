package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MyelinBots/userapi-go/internal/db"
)

/*
MODEL
*/

type User struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`

	UserID   string `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"user_id"`
	Username string `gorm:"column:username;type:varchar(100);not null;uniqueIndex" json:"username"`
	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Address  string `gorm:"column:address;type:text" json:"address"`
}

func (User) TableName() string {
	return "users"
}

/*
REPOSITORY INTERFACE
*/

type UserRepository interface {
	FindAllWithUsername(ctx context.Context) ([]*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUserID(ctx context.Context, userID string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, user *User) error
}

/*
REPOSITORY IMPL
*/

type UserRepositoryImpl struct {
	db *db.DB
}

func NewUserRepository(database *db.DB) UserRepository {
	return &UserRepositoryImpl{db: database}
}

func norm(s string) string { return strings.TrimSpace(s) }

func (r *UserRepositoryImpl) FindAllWithUsername(ctx context.Context) ([]*User, error) {
	var users []*User
	if err := r.db.DB.WithContext(ctx).
		Where("username IS NOT NULL").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).
		Where("username = ?", norm(username)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", norm(email)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", norm(username)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("email = ?", norm(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) Save(ctx context.Context, user *User) (*User, error) {
	if err := r.db.DB.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, user *User) error {
	return r.db.DB.WithContext(ctx).Delete(user).Error
}
