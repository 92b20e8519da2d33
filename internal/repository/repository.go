package repository

import (
	"context"
	"errors"
	"fmt"

	"txnotify/internal/db"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")

type NotificationRepository struct {
	db Storage
}

func NewNotificationRepository(db Storage) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// MigrateAndSeed creates the tables and, when the user table is empty,
// stores the given operators with hashed passwords.
func (r *NotificationRepository) MigrateAndSeed(ctx context.Context, operators []Operator) error {
	err := r.db.MigrateTable(&Notification{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := make([]User, 0, len(operators))
	for _, op := range operators {
		hash, err := bcrypt.GenerateFromPassword([]byte(op.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password of %q: %w", op.Username, err)
		}
		users = append(users, User{
			ID:           uuid.NewString(),
			Username:     op.Username,
			PasswordHash: string(hash),
		})
	}
	if len(users) == 0 {
		return nil
	}

	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *NotificationRepository) SaveNotification(ctx context.Context, n Notification) error {
	err := r.db.SaveToTable(ctx, &[]Notification{n})
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}
	return nil
}

// GetNotifications returns the messages stored for txHash, oldest first.
func (r *NotificationRepository) GetNotifications(ctx context.Context, txHash string) ([]Notification, error) {
	notifications := []Notification{}
	err := r.db.GetAllOrderedBy(ctx, "transaction_hash", []string{txHash}, "created_at, id", &notifications)
	if err != nil {
		return notifications, fmt.Errorf("get notifications by hash: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
