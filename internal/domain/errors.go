package domain

import "errors"

// Доменные ошибки, используемые при работе с составом и распределением по командам.
var (
	ErrInvalidPolicy      = errors.New("invalid allocation policy")       // Неизвестная стратегия распределения, ошибка вызывающего кода.
	ErrInvalidParticipant = errors.New("invalid participant")             // Пустое имя или навык вне диапазона.
	ErrRosterFull         = errors.New("roster is full")                  // Достигнуто максимальное количество игроков.
	ErrNotEnoughPlayers   = errors.New("not enough players to make teams") // Игроков меньше минимально допустимого.
	ErrPlayerNotFound     = errors.New("player not found")                // Игрок с указанным ID отсутствует в составе.
	ErrPlayerExists       = errors.New("player already exists")           // Игрок с таким ID уже добавлен.
)
