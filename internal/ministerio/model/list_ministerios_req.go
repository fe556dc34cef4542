package model

const DefaultListLimit = 100

// ListMinisteriosReq carries the GET query. Filter values are matched verbatim.
type ListMinisteriosReq struct {
	Nombre        string `query:"nombre"`
	FechaCreacion string `query:"fecha_creacion"`
	MiembroID     string `query:"miembro_id"`
	Skip          int64  `query:"skip" validate:"gte=0"`
	Limit         int64  `query:"limit" validate:"gte=0,lte=500"`
}

func (r *ListMinisteriosReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Limit == 0 {
		r.Limit = DefaultListLimit
	}
	return nil
}

func (r *ListMinisteriosReq) Filter() MinisterioFilter {
	return MinisterioFilter{
		Nombre:        r.Nombre,
		FechaCreacion: r.FechaCreacion,
		MiembroID:     r.MiembroID,
		Skip:          r.Skip,
		Limit:         r.Limit,
	}
}
