// Package pgerr maps PostgreSQL driver errors onto the errs taxonomy.
package pgerr

import (
	"errors"

	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the integrity violations the schema can raise.
const (
	NotNullViolation    = "23502"
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

// uniqueParams names the request field behind each unique constraint.
var uniqueParams = map[string]string{
	"clients_cpf_key":          "cpf",
	"clients_email_key":        "email",
	"deliveries_order_id_key":  "orderId",
	"delivery_types_label_key": "label",
}

// Translate converts err into the matching errs type. Errors that are not
// integrity violations become *errs.StorageError tagged with operation.
// A nil err stays nil and errors already in the taxonomy pass through.
func Translate(err error, operation string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		if isDomainError(err) {
			return err
		}
		return errs.NewStorageError(operation, err)
	}

	switch pgErr.Code {
	case ForeignKeyViolation:
		return errs.NewReferenceNotFoundErrorWithCause(pgErr.ConstraintName, err)
	case UniqueViolation:
		param, ok := uniqueParams[pgErr.ConstraintName]
		if !ok {
			param = pgErr.ConstraintName
		}
		return errs.NewObjectAlreadyExistsErrorWithCause(param, pgErr.Detail, err)
	case CheckViolation:
		return errs.NewValueIsInvalidErrorWithCause(pgErr.ConstraintName, err)
	case NotNullViolation:
		return errs.NewValueIsRequiredErrorWithCause(pgErr.ColumnName, err)
	default:
		return errs.NewStorageError(operation, err)
	}
}

func isDomainError(err error) bool {
	return errs.IsValidation(err) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrObjectAlreadyExists) ||
		errors.Is(err, errs.ErrReferenceNotFound) ||
		errors.Is(err, errs.ErrStorageIsUnavailable)
}
