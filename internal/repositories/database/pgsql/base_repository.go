package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres SQLSTATE codes the repositories translate into app errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// mapReadError translates a failed single-row read.
func mapReadError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidText {
		// a malformed uuid can never match a row
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to query %s: %w", what, err)
}

// mapWriteError translates constraint violations raised by INSERT and UPDATE.
// A dangling bank or project reference is a validation failure of the input.
func mapWriteError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s references an unknown record (%s): %w", what, pgErr.ConstraintName, apperrors.ErrValidation)
		case pgCheckViolation, pgInvalidText:
			return fmt.Errorf("%s violates %s: %w", what, pgErr.ConstraintName, apperrors.ErrValidation)
		}
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// execDelete runs a single-row DELETE. Rows still referencing the target yield ErrReferenced.
func (r *BaseRepository) execDelete(ctx context.Context, query, id, what string) error {
	tag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return fmt.Errorf("%s %s: %w", what, id, apperrors.ErrReferenced)
			case pgInvalidText:
				return fmt.Errorf("%s %s: %w", what, id, apperrors.ErrNotFound)
			}
		}
		return fmt.Errorf("failed to delete %s %s: %w", what, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", what, id, apperrors.ErrNotFound)
	}
	return nil
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryOne scans exactly one row into M. No row yields pgx.ErrNoRows.
func queryOne[M any](ctx context.Context, q querier, query string, args ...any) (M, error) {
	rows, _ := q.Query(ctx, query, args...)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
}

// queryAll scans every row into M and maps the result through toDomain.
func queryAll[M, D any](ctx context.Context, q querier, toDomain func([]M) []D, query string, args ...any) ([]D, error) {
	rows, _ := q.Query(ctx, query, args...)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, err
	}
	return toDomain(ms), nil
}
