package types

import "time"

// Project is a user-created unit of work nested under one Division.
// An earlier schema generation called this entity "Client"; the persisted
// field and collection names were renamed during the v2 migration.
//
// DivisionID should reference one of the static Divisions but is not
// validated at write time. A dangling or empty reference groups the
// project as unassigned.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DivisionID  string    `json:"divisionId"`
	IsActive    bool      `json:"isActive"`
	DateCreated time.Time `json:"dateCreated"`
}

// ProjectUpdate carries optional field overrides for UpdateProject.
// Nil fields are left untouched (shallow merge).
type ProjectUpdate struct {
	Name       *string
	DivisionID *string
	IsActive   *bool
}
