// Package models holds the client-side data types: the User entity with its
// pure shallow-merge logic, and the wire DTOs of the backend REST API.
package models
