package db

import (
	"github.com/RACSolutions/endocare/internal/models"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	database *gorm.DB
}

func NewDocumentRepository(database *gorm.DB) *DocumentRepository {
	return &DocumentRepository{database: database}
}

// Find returns the stored blob for a user/name pair. The second result is
// false when no document exists yet.
func (repo *DocumentRepository) Find(userID uint, name string) (string, bool, error) {
	document := models.Document{}
	result := repo.database.
		Where("user_id = ? AND name = ?", userID, name).
		Limit(1).
		Find(&document)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return document.Value, true, nil
}

// Upsert replaces the stored blob for a user/name pair, creating the row on
// first write.
func (repo *DocumentRepository) Upsert(userID uint, name string, value string) error {
	document := models.Document{}
	result := repo.database.
		Where("user_id = ? AND name = ?", userID, name).
		Limit(1).
		Find(&document)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		document = models.Document{
			UserID: userID,
			Name:   name,
			Value:  value,
		}
		return repo.database.Create(&document).Error
	}

	document.Value = value
	return repo.database.Save(&document).Error
}

func (repo *DocumentRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.Document{}).Error
}
