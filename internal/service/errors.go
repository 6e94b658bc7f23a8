package service

import (
	"errors"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// translate maps repository sentinels onto application error codes.
// Anything else passes through and ends up as an internal error.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicate):
		return apperr.Wrap(apperr.CodeConflict, what+" already exists", err)
	case errors.Is(err, repository.ErrReference):
		return apperr.Wrap(apperr.CodeConflict, what+" is referenced by other records", err)
	case errors.Is(err, repository.ErrNoRows):
		return apperr.Wrap(apperr.CodeNotFound, what+" not found", err)
	}
	return err
}

func requireAdmin(actor Identity) error {
	if actor.Role != models.RoleAdmin {
		return apperr.Forbidden("admin role required")
	}
	return nil
}

func notFound(what string, id int64) error {
	return apperr.NotFound("%s %d not found", what, id)
}
