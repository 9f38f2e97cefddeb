package store

import (
	"errors"

	"gamereviews/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a gorm-managed Postgres connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByAuth0ID(auth0ID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("auth0_id = ?", auth0ID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindOrCreateUser(u *models.User) (*models.User, error) {
	var existing models.User
	err := s.db.Where("auth0_id = ?", u.Auth0ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auth0_id"}},
		DoNothing: true,
	}).Create(u)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// A concurrent request inserted the row first.
		if err := s.db.Where("auth0_id = ?", u.Auth0ID).First(&existing).Error; err != nil {
			return nil, translate(err)
		}
		return &existing, nil
	}
	return u, nil
}

func (s *GormStore) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *GormStore) FindOrCreateGame(name string) (*models.Game, error) {
	game := models.Game{Name: name}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&game)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Conflict: the name already exists, fetch the winning row.
		if err := s.db.Where("name = ?", name).First(&game).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &game, nil
}

func (s *GormStore) ListReviews(limit int) ([]models.ReviewItem, error) {
	var reviews []models.ReviewItem
	query := s.db.Preload("Game").Preload("User").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) GetReview(id uint) (*models.ReviewItem, error) {
	var review models.ReviewItem
	if err := s.db.Preload("Game").Preload("User").First(&review, id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *GormStore) ListReviewsByUser(userID uint) ([]models.ReviewItem, error) {
	var reviews []models.ReviewItem
	err := s.db.Preload("Game").Preload("User").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) CreateReview(r *models.ReviewItem) error {
	return s.db.Create(r).Error
}

func (s *GormStore) SaveReview(r *models.ReviewItem) error {
	return s.db.Save(r).Error
}

func (s *GormStore) DeleteReview(id uint) error {
	return s.db.Delete(&models.ReviewItem{}, id).Error
}

func (s *GormStore) CreateFollow(followerID, followingID uint) (*models.Follow, error) {
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(&follow)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrDuplicateFollow
	}
	return &follow, nil
}

func (s *GormStore) DeleteFollow(followerID, followingID uint) error {
	return s.db.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

func (s *GormStore) ListFollowings(userID uint) ([]models.PublicUser, error) {
	var users []models.PublicUser
	err := s.db.Model(&models.User{}).
		Select("users.id, users.name, users.nickname, users.picture").
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) ListFollowers(userID uint) ([]models.PublicUser, error) {
	var users []models.PublicUser
	err := s.db.Model(&models.User{}).
		Select("users.id, users.name, users.nickname, users.picture").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
