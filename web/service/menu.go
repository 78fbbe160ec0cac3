package service

import (
	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
)

// MenuService is the repository for menu items.
type MenuService struct {
	uploadService UploadService
}

func (s *MenuService) GetAll() ([]*model.MenuItem, error) {
	db := database.GetDB()
	var items []*model.MenuItem
	err := db.Model(model.MenuItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuService) GetOne(id int) (*model.MenuItem, error) {
	db := database.GetDB()
	item := &model.MenuItem{}
	err := db.Model(model.MenuItem{}).
		Where("id = ?", id).
		First(item).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item, nil
}

// Save inserts when the id is zero and updates otherwise.
func (s *MenuService) Save(item *model.MenuItem) error {
	db := database.GetDB()
	if item.Id == 0 {
		return db.Create(item).Error
	}
	return db.Save(item).Error
}

// Delete removes the row first; only then is the referenced picture file
// removed, best effort, so a failed row delete never orphans the reference.
func (s *MenuService) Delete(item *model.MenuItem) error {
	db := database.GetDB()
	if err := db.Delete(&model.MenuItem{}, item.Id).Error; err != nil {
		return err
	}
	if item.Picture != nil {
		s.uploadService.Remove(*item.Picture)
	}
	return nil
}
