// Package circulationtest provides test helpers for building circulation
// stores on an in-memory engine with a settable clock, plus Given* fixture
// helpers for arranging books, students, and loans.
package circulationtest
