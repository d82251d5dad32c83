// Package warehouse holds declarations the generator must reject.
package warehouse

import (
	"time"
)

// Audit is embedded below.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address embeds Audit, which has no declared field name.
//
//nullablegen:generate
type Address struct {
	Audit
	Street string
	City   string
}

// ShipmentState is not a struct.
//
//nullablegen:generate
type ShipmentState int

// Padded has a blank field.
//
//nullablegen:generate
type Padded struct {
	ID int
	_  [4]byte
}

// Location is an alias declaration.
//
//nullablegen:generate
type Location = Address

// Marks inside a grouped declaration apply to each type separately.
type (
	// Bin is a valid struct inside a grouped declaration.
	//
	//nullablegen:generate
	Bin struct {
		Code string
	}

	// Handler is a function type.
	//
	//nullablegen:generate
	Handler func(Bin) error
)

// Shelf is not marked.
type Shelf struct {
	Row int
}
