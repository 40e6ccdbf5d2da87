package dto

type CrearClienteRequest struct {
	Rut       string  `json:"rut"       validate:"required,min=1,max=12"`
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=100"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=100"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=20"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
}

type ClienteResponse struct {
	ID        string  `json:"id"`
	Rut       string  `json:"rut"`
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
}
