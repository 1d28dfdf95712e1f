package dto

type RegisterRequestDTO struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	IsCompany bool   `json:"is_company"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
