package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"zoo-service/db-utils/models"
	inputModels "zoo-service/models"
)

type AnimalRepository interface {
	FindAll() ([]models.Animal, error)
	GetCount() (int64, error)
	FindByID(id uint) (models.Animal, error)
	FindByEnclosure(enclosureID uint) ([]models.Animal, error)
	Create(animal inputModels.Animal) (models.Animal, error)
	Replace(id uint, animal inputModels.Animal) (models.Animal, error)
	Delete(id uint) (models.Animal, error)
	UpdateEnclosure(id uint, enclosureID uint) (models.Animal, error)
}

type AnimalRepositoryImpl struct {
	db *gorm.DB
}

func NewAnimalRepositoryImpl(DB *gorm.DB) AnimalRepository {
	return &AnimalRepositoryImpl{db: DB}
}

func (a *AnimalRepositoryImpl) FindAll() ([]models.Animal, error) {
	// deleted animals stay in the table with is_active false
	var animals []models.Animal
	result := a.db.Where("is_active = ?", true).Find(&animals)
	if result.Error != nil {
		return animals, result.Error
	}
	return animals, nil
}

func (a *AnimalRepositoryImpl) GetCount() (int64, error) {
	var count int64
	result := a.db.Model(&models.Animal{}).Where("is_active = ?", true).Count(&count)
	if result.Error != nil {
		return -1, result.Error
	}
	return count, nil
}

func (a *AnimalRepositoryImpl) FindByID(id uint) (models.Animal, error) {
	var animal models.Animal
	// find first record with id
	result := a.db.First(&animal, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return animal, &NotFoundError{Entity: "animal", Id: id, When: time.Now()}
		}
		return animal, result.Error
	}
	// check if deleted
	if !animal.IsActive {
		return animal, &NotFoundError{Entity: "animal", Id: id, When: time.Now()}
	}
	return animal, nil
}

func (a *AnimalRepositoryImpl) FindByEnclosure(enclosureID uint) ([]models.Animal, error) {
	var animals []models.Animal
	result := a.db.Where("enclosure_id = ? AND is_active = ?", enclosureID, true).Find(&animals)
	if result.Error != nil {
		return animals, result.Error
	}
	return animals, nil
}

func (a *AnimalRepositoryImpl) Create(animalInput inputModels.Animal) (models.Animal, error) {
	// set exactly those fields which are needed
	var animal models.Animal
	animal.Name = animalInput.Name
	animal.Species = animalInput.Species
	animal.ZookeeperID = animalInput.ZookeeperID
	animal.EnclosureID = animalInput.EnclosureID
	animal.IsActive = true
	// create in the DB
	result := a.db.Create(&animal)
	if result.Error != nil {
		return animal, result.Error
	}
	return animal, nil
}

func (a *AnimalRepositoryImpl) Replace(id uint, animalInput inputModels.Animal) (models.Animal, error) {
	animal, err := a.FindByID(id)
	if err != nil {
		return animal, err
	}
	// replace needed field values
	animal.Name = animalInput.Name
	animal.Species = animalInput.Species
	animal.ZookeeperID = animalInput.ZookeeperID
	animal.EnclosureID = animalInput.EnclosureID
	// save replaced animal
	result := a.db.Save(&animal)
	if result.Error != nil {
		return animal, result.Error
	}
	return animal, nil
}

func (a *AnimalRepositoryImpl) Delete(id uint) (models.Animal, error) {
	animal, err := a.FindByID(id)
	if err != nil {
		return animal, err
	}
	// set him to deleted state
	animal.IsActive = false
	// apply changes
	result := a.db.Save(&animal)
	if result.Error != nil {
		return animal, result.Error
	}
	return animal, nil
}

func (a *AnimalRepositoryImpl) UpdateEnclosure(id uint, enclosureID uint) (models.Animal, error) {
	animal, err := a.FindByID(id)
	if err != nil {
		return animal, err
	}
	// move him to the new enclosure
	animal.EnclosureID = enclosureID
	// apply changes
	result := a.db.Save(&animal)
	if result.Error != nil {
		return animal, result.Error
	}
	return animal, nil
}
