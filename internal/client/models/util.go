package models

import "strconv"

// Ptr returns a pointer to v. Handy for building a UserPatch.
func Ptr[T any](v T) *T { return &v }

func itoa(v int64) string { return strconv.FormatInt(v, 10) }
