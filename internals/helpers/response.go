package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kelasku_backend/internals/helpers/errs"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag() // bisa diganti jadi pesan kustom
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

// ✅ Mapping error domain → HTTP status.
// Controller cukup panggil ini untuk error dari engine/workflow/service.
func DomainError(c *fiber.Ctx, err error) error {
	switch {
	case errs.IsConfiguration(err):
		return Error(c, fiber.StatusUnprocessableEntity, err.Error())
	case errs.IsInvalidOperation(err):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errs.IsWorkflowViolation(err):
		return Error(c, fiber.StatusConflict, err.Error())
	case errs.IsPersistence(err):
		return Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data. Silakan coba lagi.")
	default:
		return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
