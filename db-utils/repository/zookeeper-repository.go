package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"zoo-service/db-utils/models"
	inputModels "zoo-service/models"
)

type ZookeeperRepository interface {
	FindAll() ([]models.Zookeeper, error)
	GetCount() (int64, error)
	FindByID(id uint) (models.Zookeeper, error)
	FindEnclosures(id uint) ([]models.Enclosure, error)
	Create(zookeeper inputModels.Zookeeper) (models.Zookeeper, error)
	Replace(id uint, zookeeper inputModels.Zookeeper) (models.Zookeeper, error)
	Delete(id uint) (models.Zookeeper, error)
}

type ZookeeperRepositoryImpl struct {
	db *gorm.DB
}

func NewZookeeperRepositoryImpl(DB *gorm.DB) ZookeeperRepository {
	return &ZookeeperRepositoryImpl{db: DB}
}

func (z *ZookeeperRepositoryImpl) FindAll() ([]models.Zookeeper, error) {
	var zookeepers []models.Zookeeper
	result := z.db.Where("is_active = ?", true).Find(&zookeepers)
	if result.Error != nil {
		return zookeepers, result.Error
	}
	return zookeepers, nil
}

func (z *ZookeeperRepositoryImpl) GetCount() (int64, error) {
	var count int64
	result := z.db.Model(&models.Zookeeper{}).Where("is_active = ?", true).Count(&count)
	if result.Error != nil {
		return -1, result.Error
	}
	return count, nil
}

func (z *ZookeeperRepositoryImpl) FindByID(id uint) (models.Zookeeper, error) {
	var zookeeper models.Zookeeper
	result := z.db.First(&zookeeper, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zookeeper, &NotFoundError{Entity: "zookeeper", Id: id, When: time.Now()}
		}
		return zookeeper, result.Error
	}
	if !zookeeper.IsActive {
		return zookeeper, &NotFoundError{Entity: "zookeeper", Id: id, When: time.Now()}
	}
	return zookeeper, nil
}

// FindEnclosures - the enclosures a keeper works, derived through the animals
// assigned to him.
func (z *ZookeeperRepositoryImpl) FindEnclosures(id uint) ([]models.Enclosure, error) {
	if _, err := z.FindByID(id); err != nil {
		return nil, err
	}
	// distinct enclosures of his active animals
	var enclosureIDs []uint
	result := z.db.Model(&models.Animal{}).
		Where("zookeeper_id = ? AND is_active = ?", id, true).
		Distinct().
		Pluck("enclosure_id", &enclosureIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	enclosures := []models.Enclosure{}
	if len(enclosureIDs) == 0 {
		return enclosures, nil
	}
	result = z.db.Where("id IN ? AND is_active = ?", enclosureIDs, true).Find(&enclosures)
	if result.Error != nil {
		return nil, result.Error
	}
	return enclosures, nil
}

func (z *ZookeeperRepositoryImpl) Create(zookeeperInput inputModels.Zookeeper) (models.Zookeeper, error) {
	var zookeeper models.Zookeeper
	zookeeper.Name = zookeeperInput.Name
	zookeeper.Birthday = zookeeperInput.Birthday
	zookeeper.IsActive = true
	result := z.db.Create(&zookeeper)
	if result.Error != nil {
		return zookeeper, result.Error
	}
	return zookeeper, nil
}

func (z *ZookeeperRepositoryImpl) Replace(id uint, zookeeperInput inputModels.Zookeeper) (models.Zookeeper, error) {
	zookeeper, err := z.FindByID(id)
	if err != nil {
		return zookeeper, err
	}
	zookeeper.Name = zookeeperInput.Name
	zookeeper.Birthday = zookeeperInput.Birthday
	result := z.db.Save(&zookeeper)
	if result.Error != nil {
		return zookeeper, result.Error
	}
	return zookeeper, nil
}

func (z *ZookeeperRepositoryImpl) Delete(id uint) (models.Zookeeper, error) {
	zookeeper, err := z.FindByID(id)
	if err != nil {
		return zookeeper, err
	}
	zookeeper.IsActive = false
	result := z.db.Save(&zookeeper)
	if result.Error != nil {
		return zookeeper, result.Error
	}
	return zookeeper, nil
}
