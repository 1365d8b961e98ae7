package models

import (
	"sort"
	"time"
)

// Partner is the character snapshot embedded in a chat.
type Partner struct {
	Nombre         string `json:"nombre"`
	Nacionalidad   string `json:"nacionalidad"`
	Genero         string `json:"genero"`
	IdiomaObjetivo string `json:"idioma_objetivo"`
}

// Identity returns the (nombre, nacionalidad) tuple of the partner.
func (p Partner) Identity() Identity {
	return Identity{Nombre: p.Nombre, Nacionalidad: p.Nacionalidad}
}

// Chat связывает пользователя с одним персонажем
type Chat struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	Partner   Partner   `json:"partner"`
	Activo    bool      `json:"activo"`
}

// Sender автор сообщения
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ia"
)

// Valid reports whether s is one of the known senders.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAI
}

// Message сообщение внутри чата (append-only)
type Message struct {
	ID        string    `json:"_id,omitempty"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// SortMessages orders messages by creation time, keeping server order for equal timestamps.
func SortMessages(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
}

// SearchCriteria критерии поиска персонажей
type SearchCriteria struct {
	Idioma         string `json:"idioma,omitempty"`
	Nacionalidad   string `json:"nacionalidad,omitempty"`
	Genero         string `json:"genero,omitempty"`
	NivelEnsenanza string `json:"nivel_enseñanza,omitempty"`
	EdadMin        int    `json:"edad_min,omitempty"`
	EdadMax        int    `json:"edad_max,omitempty"`
}
