package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// storeErr wraps a database error as domain.ErrStore, naming the Postgres condition when there is one.
func storeErr(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return domain.StoreError(op, fmt.Errorf("%s (%s): %w", pgErr.Code.Name(), pgErr.Constraint, err))
	}
	return domain.StoreError(op, err)
}
