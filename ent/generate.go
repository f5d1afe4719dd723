// Package ent holds the schema definitions; the client code is generated.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
