package usecase

import (
	"errors"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const maxWriteAttempts = 3

// retryOnConflict runs a fetch-mutate-replace cycle until it stops losing
// version races, giving up after maxWriteAttempts.
func retryOnConflict(fn func() error) error {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err := fn()
		if !errors.Is(err, contract.ErrVersionConflict) {
			return err
		}
	}
	return apperror.Conflict("resource is being modified concurrently, please retry")
}

// storeError translates a repository failure. ErrNotFound becomes a NotFound
// carrying notFoundMsg; anything unexpected is logged and hidden.
func storeError(logger usecasecontract.IAppLogger, op string, err error, notFoundMsg string) error {
	if errors.Is(err, contract.ErrNotFound) {
		return apperror.NotFound(notFoundMsg)
	}
	if errors.Is(err, contract.ErrVersionConflict) {
		return err
	}
	if apperror.KindOf(err) != apperror.KindInternal {
		return err
	}
	logger.Errorf("%s: %v", op, err)
	return apperror.Internal(err)
}
