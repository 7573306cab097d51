package repository

import (
	"helpdesk/internal/model"
	"helpdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/mongo"
)

// Reference-data collections share the generic CRUD repository;
// uniqueness checks live in the services.

func NewBranchRepository(db *mongo.Database) generic.BaseRepository[*model.Branch] {
	return generic.NewBaseRepository[*model.Branch](db.Collection("branches"))
}

func NewCategoryRepository(db *mongo.Database) generic.BaseRepository[*model.Category] {
	return generic.NewBaseRepository[*model.Category](db.Collection("categories"))
}

func NewDepartmentRepository(db *mongo.Database) generic.BaseRepository[*model.Department] {
	return generic.NewBaseRepository[*model.Department](db.Collection("departments"))
}
