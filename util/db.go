package util

import (
	"fmt"
	"log/slog"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cartabinaria/survey/models"
)

var db *gorm.DB = nil

func ConnectDb(ConnStr string) error {
	config := &gorm.Config{
		PrepareStmt: true, // optimize raw queries
		Logger: slogGorm.New(
			slogGorm.WithHandler(slog.Default().Handler()),
			slogGorm.WithSlowThreshold(time.Second),
			slogGorm.WithIgnoreTrace(),
		),
	}
	var err error
	db, err = gorm.Open(postgres.Open(ConnStr), config)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}
	return nil
}

func GetDb() *gorm.DB {
	return db
}

// SetDb swaps the process-wide handle. Tests use it to point the
// handlers at an in-memory database.
func SetDb(conn *gorm.DB) {
	db = conn
}

func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateUserByID mirrors the authenticated identity into our users
// table. A concurrent first-write for the same user is absorbed by the
// conflict clause instead of surfacing a duplicate-key error.
func GetOrCreateUserByID(db *gorm.DB, id uint, username string) (*models.User, error) {
	user, err := GetUserByID(db, id)
	if err == nil {
		return user, nil
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = &models.User{
		ID:       id,
		Username: username,
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}
