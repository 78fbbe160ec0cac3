package service

import (
	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
)

// DrinkService is the repository for drinks, the same lifecycle as menu items.
type DrinkService struct {
	uploadService UploadService
}

func (s *DrinkService) GetAll() ([]*model.Drink, error) {
	db := database.GetDB()
	var drinks []*model.Drink
	err := db.Model(model.Drink{}).Find(&drinks).Error
	if err != nil {
		return nil, err
	}
	return drinks, nil
}

func (s *DrinkService) GetOne(id int) (*model.Drink, error) {
	db := database.GetDB()
	drink := &model.Drink{}
	err := db.Model(model.Drink{}).
		Where("id = ?", id).
		First(drink).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return drink, nil
}

func (s *DrinkService) Save(drink *model.Drink) error {
	db := database.GetDB()
	if drink.Id == 0 {
		return db.Create(drink).Error
	}
	return db.Save(drink).Error
}

// Delete removes the row first, then the picture file best effort.
func (s *DrinkService) Delete(drink *model.Drink) error {
	db := database.GetDB()
	if err := db.Delete(&model.Drink{}, drink.Id).Error; err != nil {
		return err
	}
	if drink.Picture != nil {
		s.uploadService.Remove(*drink.Picture)
	}
	return nil
}
