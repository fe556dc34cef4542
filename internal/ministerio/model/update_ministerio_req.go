package model

// UpdateMinisterioReq is the PATCH body. Absent keys stay nil and are not written.
type UpdateMinisterioReq struct {
	Nombre        *string `json:"nombre"`
	FechaCreacion *string `json:"fecha_creacion"`
	Descripcion   *string `json:"descripcion"`
	MiembroID     *string `json:"miembro_id"`
}

func (r *UpdateMinisterioReq) Patch() MinisterioPatch {
	return MinisterioPatch{
		Nombre:        r.Nombre,
		FechaCreacion: r.FechaCreacion,
		Descripcion:   r.Descripcion,
		MiembroID:     r.MiembroID,
	}
}
