package authenticating

import "errors"

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrMissingRole  = errors.New("token sem perfil de acesso")
)
