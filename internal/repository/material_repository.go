package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// MaterialRepository manages the append-only materials table.
type MaterialRepository struct {
	db *sqlx.DB
}

// NewMaterialRepository constructs a MaterialRepository.
func NewMaterialRepository(db *sqlx.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// List returns published materials, newest first.
func (r *MaterialRepository) List(ctx context.Context) ([]models.Material, error) {
	const query = `SELECT id, type, title, link, teacher_code, published_at
        FROM materials ORDER BY published_at DESC`
	var materials []models.Material
	if err := r.db.SelectContext(ctx, &materials, query); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// Create appends a new material record.
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	if material.PublishedAt.IsZero() {
		material.PublishedAt = time.Now().UTC()
	}
	const query = `INSERT INTO materials (id, type, title, link, teacher_code, published_at)
        VALUES (:id, :type, :title, :link, :teacher_code, :published_at)`
	if _, err := r.db.NamedExecContext(ctx, query, material); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}
