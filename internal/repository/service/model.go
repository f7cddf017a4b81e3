package repository

import (
	"time"
)

type ServiceEntity struct {
	ID               string     `bson:"_id"`
	Name             string     `bson:"name"`
	Description      string     `bson:"description,omitempty"`
	Price            float64    `bson:"price"`
	EstimatedMinutes int64      `bson:"estimated_minutes"`
	Active           bool       `bson:"active"`
	Categories       []string   `bson:"categories,omitempty"`
	RequiredParts    []string   `bson:"required_parts,omitempty"`
	Requirements     []string   `bson:"requirements,omitempty"`
	CreatedAt        *time.Time `bson:"created_at,omitempty"`
	UpdatedAt        *time.Time `bson:"updated_at,omitempty"`
}
