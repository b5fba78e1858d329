package repository

import "errors"

// ErrDuplicateEmail is returned by Create when the unique email constraint
// rejects the insert. Callers translate it into a 409.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrCustomerNotFound is returned by updates that matched no row.
var ErrCustomerNotFound = errors.New("customer not found")
