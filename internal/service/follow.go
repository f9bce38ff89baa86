package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/models"
)

// FollowedAuthor is one entry of the follow listing: the followed user,
// their recipes (possibly truncated), and the untruncated recipe count.
type FollowedAuthor struct {
	User         models.User
	IsSubscribed bool
	Recipes      []RecipeSummary
	RecipesCount int64
}

// FollowService manages directed follow relationships between users.
type FollowService struct {
	db *gorm.DB
}

// NewFollowService creates a new FollowService instance
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow subscribes userID to targetID. Self-follows are rejected before
// any write; duplicate pairs lose against the unique constraint.
func (s *FollowService) Follow(ctx context.Context, userID, targetID uint) (*FollowedAuthor, error) {
	if userID == targetID {
		return nil, ErrSelfFollow
	}

	var target models.User
	if err := s.db.WithContext(ctx).First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	follow := models.Follow{UserID: userID, FollowingID: targetID}
	if err := s.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return s.authorEntry(ctx, target, 0)
}

// Unfollow deletes the subscription, failing when none exists.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND following_id = ?", userID, targetID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotSubscribed
	}
	return nil
}

// IsSubscribed reports whether userID follows targetID. Anonymous
// requesters (userID zero) are never subscribed.
func (s *FollowService) IsSubscribed(ctx context.Context, userID, targetID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", userID, targetID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowing returns the users userID follows, newest subscription
// first. Each entry carries the author's recipes ordered by id ascending
// (truncated to recipesLimit when positive) and the untruncated total.
func (s *FollowService) ListFollowing(ctx context.Context, userID uint, recipesLimit int) ([]FollowedAuthor, error) {
	var follows []models.Follow
	if err := s.db.WithContext(ctx).Preload("Following").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&follows).Error; err != nil {
		return nil, err
	}

	authors := make([]FollowedAuthor, 0, len(follows))
	for _, follow := range follows {
		entry, err := s.authorEntry(ctx, follow.Following, recipesLimit)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *entry)
	}
	return authors, nil
}

// authorEntry builds the followed-user projection. IsSubscribed is
// always true here since every caller reaches it through an existing
// follow, but it is carried explicitly so the projection is reusable.
func (s *FollowService) authorEntry(ctx context.Context, author models.User, recipesLimit int) (*FollowedAuthor, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("author_id = ?", author.ID).Order("id")
	if recipesLimit > 0 {
		query = query.Limit(recipesLimit)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("author_id = ?", author.ID).Count(&count).Error; err != nil {
		return nil, err
	}

	summaries := make([]RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, summaryOf(r))
	}

	return &FollowedAuthor{
		User:         author,
		IsSubscribed: true,
		Recipes:      summaries,
		RecipesCount: count,
	}, nil
}
