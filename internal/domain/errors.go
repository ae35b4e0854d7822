package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput   = errors.New("datos de entrada inválidos")
	ErrInvalidOptions = errors.New("opciones de análisis inválidas")
)
