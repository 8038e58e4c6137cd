package dto

type LoginDTO struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
}
