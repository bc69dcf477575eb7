package pgsql

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapStorageError_Unavailable(t *testing.T) {
	unavailable := []error{
		io.EOF,
		io.ErrUnexpectedEOF,
		context.DeadlineExceeded,
		&net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET},
	}
	for _, err := range unavailable {
		mapped := mapStorageError(err)
		assert.ErrorIs(t, mapped, apperrors.ErrUnavailable, "expected %v to map to ErrUnavailable", err)
	}
}

func TestMapStorageError_WrappedNetworkError(t *testing.T) {
	// Errors wrapped by the driver keep mapping through errors.As/Is.
	wrapped := errors.Join(errors.New("exec failed"), &net.OpError{Op: "write", Net: "tcp", Err: syscall.EPIPE})

	mapped := mapStorageError(wrapped)

	assert.ErrorIs(t, mapped, apperrors.ErrUnavailable)
}

func TestMapStorageError_PassesThroughSQLErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: uniqueViolation, Message: "duplicate key value"}

	mapped := mapStorageError(pgErr)

	assert.NotErrorIs(t, mapped, apperrors.ErrUnavailable)
	assert.Equal(t, error(pgErr), mapped)
}

func TestMapStorageError_Nil(t *testing.T) {
	assert.NoError(t, mapStorageError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolation}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
}
