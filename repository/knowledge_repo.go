package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tieubaoca/csbot-be/types"
)

type KnowledgeRepo interface {
	ListAll(ctx context.Context) ([]types.KnowledgeEntry, error)
	Create(ctx context.Context, entry *types.KnowledgeEntry) error
	DeleteByID(ctx context.Context, id uint) error
}

type knowledgeRepo struct {
	db *gorm.DB
}

func NewKnowledgeRepo(db *gorm.DB) KnowledgeRepo {
	return &knowledgeRepo{
		db: db,
	}
}

func (r *knowledgeRepo) ListAll(ctx context.Context) ([]types.KnowledgeEntry, error) {
	entries := make([]types.KnowledgeEntry, 0)
	err := r.db.WithContext(ctx).Find(&entries).Error
	return entries, err
}

func (r *knowledgeRepo) Create(ctx context.Context, entry *types.KnowledgeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *knowledgeRepo) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&types.KnowledgeEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
