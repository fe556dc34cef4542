package model

// CreateMinisterioReq is the POST body. Keys outside the allow-list are dropped by the decoder;
// the four values are stored exactly as sent.
type CreateMinisterioReq struct {
	Nombre        string `json:"nombre"`
	FechaCreacion string `json:"fecha_creacion"`
	Descripcion   string `json:"descripcion"`
	MiembroID     string `json:"miembro_id"`
}

func (r *CreateMinisterioReq) Fields() MinisterioFields {
	return MinisterioFields{
		Nombre:        r.Nombre,
		FechaCreacion: r.FechaCreacion,
		Descripcion:   r.Descripcion,
		MiembroID:     r.MiembroID,
	}
}
