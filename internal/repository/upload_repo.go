package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(ctx context.Context, batch *model.UploadBatch) error
	List(ctx context.Context, page, limit int) ([]model.UploadBatch, int64, error)
	GetByTag(ctx context.Context, batchTag string) (*model.UploadBatch, error)
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, batch *model.UploadBatch) error {
	return dbFrom(ctx, r.db).Create(batch).Error
}

func (r *uploadRepository) List(ctx context.Context, page, limit int) ([]model.UploadBatch, int64, error) {
	var batches []model.UploadBatch
	var total int64

	db := dbFrom(ctx, r.db)
	if err := db.Model(&model.UploadBatch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Preload("User").Order("created_at desc").Offset(offset).Limit(limit).Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

func (r *uploadRepository) GetByTag(ctx context.Context, batchTag string) (*model.UploadBatch, error) {
	var batch model.UploadBatch
	if err := dbFrom(ctx, r.db).Where("batch_tag = ?", batchTag).First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}
