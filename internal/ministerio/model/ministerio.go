package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Field names as stored in the ministerios collection.
const (
	FieldID            = "_id"
	FieldNombre        = "nombre"
	FieldFechaCreacion = "fecha_creacion"
	FieldDescripcion   = "descripcion"
	FieldMiembroID     = "miembro_id"
)

// FillableFields is the mass-assignment allow-list. MinisterioFields mirrors it and
// reads from storage are projected onto it.
var FillableFields = []string{
	FieldNombre,
	FieldFechaCreacion,
	FieldDescripcion,
	FieldMiembroID,
}

// Ministerio is a document of the ministerios collection.
//
// FechaCreacion is kept as the literal string the caller supplied; it is never
// parsed into a date. MiembroID names a Miembro by convention only.
type Ministerio struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre        string             `json:"nombre" bson:"nombre"`
	FechaCreacion string             `json:"fecha_creacion" bson:"fecha_creacion"`
	Descripcion   string             `json:"descripcion" bson:"descripcion"`
	MiembroID     string             `json:"miembro_id" bson:"miembro_id"`
}

// MinisterioFields holds the only values that may be bulk-assigned on create.
type MinisterioFields struct {
	Nombre        string
	FechaCreacion string
	Descripcion   string
	MiembroID     string
}

// NewMinisterio builds an unsaved record from the allow-listed fields.
func NewMinisterio(f MinisterioFields) *Ministerio {
	return &Ministerio{
		Nombre:        f.Nombre,
		FechaCreacion: f.FechaCreacion,
		Descripcion:   f.Descripcion,
		MiembroID:     f.MiembroID,
	}
}

// MinisterioPatch is a partial update. Nil fields are left untouched.
type MinisterioPatch struct {
	Nombre        *string
	FechaCreacion *string
	Descripcion   *string
	MiembroID     *string
}

func (p MinisterioPatch) IsEmpty() bool {
	return p.Nombre == nil && p.FechaCreacion == nil && p.Descripcion == nil && p.MiembroID == nil
}

// Fields returns the supplied values keyed by stored field name.
func (p MinisterioPatch) Fields() map[string]string {
	out := make(map[string]string, 4)
	if p.Nombre != nil {
		out[FieldNombre] = *p.Nombre
	}
	if p.FechaCreacion != nil {
		out[FieldFechaCreacion] = *p.FechaCreacion
	}
	if p.Descripcion != nil {
		out[FieldDescripcion] = *p.Descripcion
	}
	if p.MiembroID != nil {
		out[FieldMiembroID] = *p.MiembroID
	}
	return out
}

// Apply copies the supplied patch values onto m.
func (p MinisterioPatch) Apply(m *Ministerio) {
	if p.Nombre != nil {
		m.Nombre = *p.Nombre
	}
	if p.FechaCreacion != nil {
		m.FechaCreacion = *p.FechaCreacion
	}
	if p.Descripcion != nil {
		m.Descripcion = *p.Descripcion
	}
	if p.MiembroID != nil {
		m.MiembroID = *p.MiembroID
	}
}

// MinisterioFilter selects documents by equality. Empty fields match anything.
type MinisterioFilter struct {
	Nombre        string
	FechaCreacion string
	MiembroID     string
	Skip          int64
	Limit         int64
}

// Conditions returns the non-empty equality conditions keyed by stored field name.
func (f MinisterioFilter) Conditions() map[string]string {
	out := make(map[string]string, 3)
	if f.Nombre != "" {
		out[FieldNombre] = f.Nombre
	}
	if f.FechaCreacion != "" {
		out[FieldFechaCreacion] = f.FechaCreacion
	}
	if f.MiembroID != "" {
		out[FieldMiembroID] = f.MiembroID
	}
	return out
}

// Matches reports whether m satisfies every condition of the filter.
func (f MinisterioFilter) Matches(m *Ministerio) bool {
	if f.Nombre != "" && m.Nombre != f.Nombre {
		return false
	}
	if f.FechaCreacion != "" && m.FechaCreacion != f.FechaCreacion {
		return false
	}
	if f.MiembroID != "" && m.MiembroID != f.MiembroID {
		return false
	}
	return true
}
