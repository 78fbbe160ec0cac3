package service

import (
	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
)

// Review listing order directives. Sorting goes by primary key, which follows
// insertion order.
const (
	SortNew = "new"
	SortOld = "old"
)

// NormalizeSort maps an arbitrary sort parameter onto a supported directive,
// defaulting to newest first.
func NormalizeSort(sort string) string {
	if sort == SortOld {
		return SortOld
	}
	return SortNew
}

// ReviewService is the repository for reviews.
type ReviewService struct{}

// GetAll lists reviews with their authors preloaded, ordered per the sort
// directive (newest first by default).
func (s *ReviewService) GetAll(sort string) ([]*model.Review, error) {
	order := "id DESC"
	if NormalizeSort(sort) == SortOld {
		order = "id ASC"
	}

	db := database.GetDB()
	var reviews []*model.Review
	err := db.Model(model.Review{}).
		Preload("User").
		Order(order).
		Find(&reviews).
		Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) GetOne(id int) (*model.Review, error) {
	db := database.GetDB()
	review := &model.Review{}
	err := db.Model(model.Review{}).
		Preload("User").
		Where("id = ?", id).
		First(review).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return review, nil
}

// Save persists the review itself; the author association is never written
// through here.
func (s *ReviewService) Save(review *model.Review) error {
	db := database.GetDB()
	if review.Id == 0 {
		return db.Omit("User").Create(review).Error
	}
	return db.Omit("User").Save(review).Error
}

func (s *ReviewService) Delete(review *model.Review) error {
	db := database.GetDB()
	return db.Delete(&model.Review{}, review.Id).Error
}
