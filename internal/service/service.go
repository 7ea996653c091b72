// Package service contains the business rules for accounts and messages.
//
// Services validate caller input before touching storage, run the existence
// and uniqueness checks, and delegate reads and writes to the repositories.
// Every outcome is an explicit value: a result, errs.ErrNotFound (or a more
// specific domain sentinel), a *errs.ValidationError, or a wrapped storage
// error.
package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks
