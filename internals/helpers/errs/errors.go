// file: internals/helpers/errs/errors.go
package errs

import (
	"errors"
	"fmt"
)

/* =======================================================
   DOMAIN ERROR TAXONOMY
   =======================================================
   Empat kategori error domain (semua recoverable, bukan fatal):
   - ConfigurationError   → layout ruangan tidak valid (ditolak saat create/update)
   - InvalidOperationError→ operasi kursi/siswa di luar scope, state TIDAK berubah
   - WorkflowViolationError→ transisi status proposal yang tidak sah
   - PersistenceError     → gagal tulis ke DB, state in-memory dipertahankan
*/

type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func NewConfiguration(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "invalid operation: " + e.Reason
}

func NewInvalidOperation(format string, args ...any) error {
	return &InvalidOperationError{Reason: fmt.Sprintf(format, args...)}
}

type WorkflowViolationError struct {
	Reason string
}

func (e *WorkflowViolationError) Error() string {
	return "workflow violation: " + e.Reason
}

func NewWorkflowViolation(format string, args ...any) error {
	return &WorkflowViolationError{Reason: fmt.Sprintf(format, args...)}
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence error on " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

/* =======================================================
   Pengecekan kategori (untuk mapping HTTP di controller)
   ======================================================= */

func IsConfiguration(err error) bool {
	var t *ConfigurationError
	return errors.As(err, &t)
}

func IsInvalidOperation(err error) bool {
	var t *InvalidOperationError
	return errors.As(err, &t)
}

func IsWorkflowViolation(err error) bool {
	var t *WorkflowViolationError
	return errors.As(err, &t)
}

func IsPersistence(err error) bool {
	var t *PersistenceError
	return errors.As(err, &t)
}
