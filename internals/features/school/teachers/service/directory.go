// file: internals/features/school/teachers/service/directory.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/teachers/model"
	"kelasku_backend/internals/helpers/errs"
)

/* =======================================================
   Directory — lookup akun login guru
   ======================================================= */

type Directory struct {
	DB *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{DB: db}
}

// UserIDForTeacher resolve teacher_id → user_id (akun login guru).
func (d *Directory) UserIDForTeacher(ctx context.Context, schoolID, teacherID uuid.UUID) (uuid.UUID, error) {
	var m model.TeacherModel
	err := d.DB.WithContext(ctx).
		Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errs.NewInvalidOperation("guru %s tidak terdaftar", teacherID)
		}
		return uuid.Nil, errs.NewPersistence("teacher lookup", err)
	}
	return m.TeacherUserID, nil
}
