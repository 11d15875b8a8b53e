package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"zoo-service/db-utils/models"
	inputModels "zoo-service/models"
)

type EnclosureRepository interface {
	FindAll() ([]models.Enclosure, error)
	GetCount() (int64, error)
	FindByID(id uint) (models.Enclosure, error)
	Create(enclosure inputModels.Enclosure) (models.Enclosure, error)
	Replace(id uint, enclosure inputModels.Enclosure) (models.Enclosure, error)
	Delete(id uint) (models.Enclosure, error)
	UpdateVisitors(id uint, open bool) (models.Enclosure, error)
}

type EnclosureRepositoryImpl struct {
	db *gorm.DB
}

func NewEnclosureRepositoryImpl(DB *gorm.DB) EnclosureRepository {
	return &EnclosureRepositoryImpl{db: DB}
}

func (e *EnclosureRepositoryImpl) FindAll() ([]models.Enclosure, error) {
	var enclosures []models.Enclosure
	result := e.db.Where("is_active = ?", true).Find(&enclosures)
	if result.Error != nil {
		return enclosures, result.Error
	}
	return enclosures, nil
}

func (e *EnclosureRepositoryImpl) GetCount() (int64, error) {
	var count int64
	result := e.db.Model(&models.Enclosure{}).Where("is_active = ?", true).Count(&count)
	if result.Error != nil {
		return -1, result.Error
	}
	return count, nil
}

func (e *EnclosureRepositoryImpl) FindByID(id uint) (models.Enclosure, error) {
	var enclosure models.Enclosure
	result := e.db.First(&enclosure, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return enclosure, &NotFoundError{Entity: "enclosure", Id: id, When: time.Now()}
		}
		return enclosure, result.Error
	}
	if !enclosure.IsActive {
		return enclosure, &NotFoundError{Entity: "enclosure", Id: id, When: time.Now()}
	}
	return enclosure, nil
}

func (e *EnclosureRepositoryImpl) Create(enclosureInput inputModels.Enclosure) (models.Enclosure, error) {
	var enclosure models.Enclosure
	enclosure.Environment = enclosureInput.Environment
	enclosure.OpenToVisitors = enclosureInput.OpenToVisitors
	enclosure.IsActive = true
	result := e.db.Create(&enclosure)
	if result.Error != nil {
		return enclosure, result.Error
	}
	return enclosure, nil
}

func (e *EnclosureRepositoryImpl) Replace(id uint, enclosureInput inputModels.Enclosure) (models.Enclosure, error) {
	enclosure, err := e.FindByID(id)
	if err != nil {
		return enclosure, err
	}
	enclosure.Environment = enclosureInput.Environment
	enclosure.OpenToVisitors = enclosureInput.OpenToVisitors
	result := e.db.Save(&enclosure)
	if result.Error != nil {
		return enclosure, result.Error
	}
	return enclosure, nil
}

func (e *EnclosureRepositoryImpl) Delete(id uint) (models.Enclosure, error) {
	enclosure, err := e.FindByID(id)
	if err != nil {
		return enclosure, err
	}
	enclosure.IsActive = false
	result := e.db.Save(&enclosure)
	if result.Error != nil {
		return enclosure, result.Error
	}
	return enclosure, nil
}

func (e *EnclosureRepositoryImpl) UpdateVisitors(id uint, open bool) (models.Enclosure, error) {
	enclosure, err := e.FindByID(id)
	if err != nil {
		return enclosure, err
	}
	// open or close the enclosure for visitors
	enclosure.OpenToVisitors = open
	result := e.db.Save(&enclosure)
	if result.Error != nil {
		return enclosure, result.Error
	}
	return enclosure, nil
}
