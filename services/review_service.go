package services

import (
	"errors"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// ProductReviewSummary 是商品维度的评价汇总。
// 只统计审核通过的评价
type ProductReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
	RatingCounts  map[int]int     `json:"rating_counts"` // 星级 -> 数量
}

// InterfaceReviewService 定义评价服务接口
type InterfaceReviewService interface {
	GetAllReviews(page, pageSize int) ([]models.Review, int64, error)
	GetReviewByID(id uint) (*models.Review, error)
	GetProductReviews(productID uint) (*ProductReviewSummary, error)
	GetPendingReviews() ([]models.Review, error)
	CreateReview(review *models.Review) error
	UpdateReview(id uint, updates map[string]interface{}) (*models.Review, error)
	ModerateReview(id uint, approve bool) (*models.Review, error)
	MarkHelpful(id uint, helpful bool) (*models.Review, error)
	DeleteReview(id uint) error
}

// ReviewService 提供商品评价相关的服务
type ReviewService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReviewService 创建一个新的评价服务
func NewReviewService(db *gorm.DB, cfg *config.Config) *ReviewService {
	return &ReviewService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllReviews 获取所有评价，支持分页
func (s *ReviewService) GetAllReviews(page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := s.DB.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetReviewByID 根据ID获取评价
func (s *ReviewService) GetReviewByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// GetProductReviews 获取商品的审核通过评价，附带平均分和星级分布
func (s *ReviewService) GetProductReviews(productID uint) (*ProductReviewSummary, error) {
	var reviews []models.Review
	if err := s.DB.Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	summary := &ProductReviewSummary{
		Reviews:      reviews,
		TotalReviews: len(reviews),
		RatingCounts: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
			if r.Rating >= 1 && r.Rating <= 5 {
				summary.RatingCounts[r.Rating]++
			}
		}
		summary.AverageRating = float64(sum) / float64(len(reviews))
	}

	return summary, nil
}

// GetPendingReviews 获取待审核的评价
func (s *ReviewService) GetPendingReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Where("status = ?", models.ReviewStatusPending).
		Order("created_at ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview 创建新评价，初始状态为待审核
func (s *ReviewService) CreateReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return NewValidationError("评分必须在1-5之间")
	}
	if review.Content == "" {
		return NewValidationError("评价内容不能为空")
	}

	// 商品必须存在
	var count int64
	if err := s.DB.Model(&models.Product{}).Where("id = ?", review.ProductID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}

	review.Status = models.ReviewStatusPending
	review.HelpfulCount = 0
	review.UnhelpfulCount = 0

	return s.DB.Create(review).Error
}

// UpdateReview 更新评价内容
func (s *ReviewService) UpdateReview(id uint, updates map[string]interface{}) (*models.Review, error) {
	review, err := s.GetReviewByID(id)
	if err != nil {
		return nil, err
	}

	if rating, ok := intFromUpdate(updates["rating"]); ok {
		if rating < 1 || rating > 5 {
			return nil, NewValidationError("评分必须在1-5之间")
		}
	}

	if err := s.DB.Model(review).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetReviewByID(id)
}

// ModerateReview 审核评价，通过或驳回
func (s *ReviewService) ModerateReview(id uint, approve bool) (*models.Review, error) {
	review, err := s.GetReviewByID(id)
	if err != nil {
		return nil, err
	}

	status := models.ReviewStatusRejected
	if approve {
		status = models.ReviewStatusApproved
	}

	if err := s.DB.Model(review).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetReviewByID(id)
}

// MarkHelpful 给评价的有用/无用计数加一，计数递增在数据库侧完成
func (s *ReviewService) MarkHelpful(id uint, helpful bool) (*models.Review, error) {
	column := "unhelpful_count"
	if helpful {
		column = "helpful_count"
	}

	result := s.DB.Model(&models.Review{}).Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}

	return s.GetReviewByID(id)
}

// DeleteReview 删除评价
func (s *ReviewService) DeleteReview(id uint) error {
	result := s.DB.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
