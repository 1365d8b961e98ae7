package models

import "time"

// Identity is the display tuple used to recognise the same partner across chats.
// Two characters sharing nombre and nacionalidad are considered the same partner.
type Identity struct {
	Nombre       string
	Nacionalidad string
}

// Character представляет персонажа-собеседника
type Character struct {
	ID                   string               `json:"_id"`
	Nombre               string               `json:"nombre"`
	Nacionalidad         string               `json:"nacionalidad"`
	Genero               string               `json:"genero"` // M | F
	IdiomaObjetivo       string               `json:"idioma_objetivo"`
	Personalidad         Personalidad         `json:"personalidad"`
	HistoriaPersonal     HistoriaPersonal     `json:"historia_personal"`
	ContextoCultural     ContextoCultural     `json:"contexto_cultural"`
	EstiloConversacional EstiloConversacional `json:"estilo_conversacional"`
	Restricciones        Restricciones        `json:"restricciones"`
	CreatedAt            time.Time            `json:"createdAt,omitzero"`
	UpdatedAt            time.Time            `json:"updatedAt,omitzero"`
	Activo               bool                 `json:"activo"`
}

// Identity returns the (nombre, nacionalidad) tuple of the character.
func (c Character) Identity() Identity {
	return Identity{Nombre: c.Nombre, Nacionalidad: c.Nacionalidad}
}

// Personalidad описывает характер персонажа
type Personalidad struct {
	Descripcion      string   `json:"descripcion"`
	Profesion        string   `json:"profesion"`
	EstadoCivil      string   `json:"estado_civil"`
	Familia          string   `json:"familia"`
	LugarNacimiento  string   `json:"lugar_nacimiento"`
	ResidenciaActual string   `json:"residencia_actual"`
	Rasgos           []string `json:"rasgos"`
	Motivaciones     []string `json:"motivaciones"`
	Miedos           []string `json:"miedos"`
	Suenos           []string `json:"sueños"`
	Hobbies          []string `json:"hobbies"`
	Edad             int      `json:"edad"`
}

// HistoriaPersonal описывает биографию персонажа
type HistoriaPersonal struct {
	Infancia          string   `json:"infancia"`
	Juventud          string   `json:"juventud"`
	VidaActual        string   `json:"vida_actual"`
	ExperienciasClave []string `json:"experiencias_clave"`
	Anecdotas         []string `json:"anecdotas"`
}

// ContextoCultural описывает культурный контекст персонажа
type ContextoCultural struct {
	Tradiciones        []string `json:"tradiciones"`
	ComidaFavorita     []string `json:"comida_favorita"`
	MusicaPreferida    []string `json:"musica_preferida"`
	LugaresImportantes []string `json:"lugares_importantes"`
	Festividades       []string `json:"festividades"`
	Costumbres         []string `json:"costumbres"`
}

// EstiloConversacional описывает манеру общения
type EstiloConversacional struct {
	Tono               string   `json:"tono"`
	NivelFormalidad    string   `json:"nivel_formalidad"` // formal | informal | mixto
	VelocidadHabla     string   `json:"velocidad_habla"`  // lenta | normal | rapida
	ExpresionesTipicas []string `json:"expresiones_tipicas"`
	PalabrasClave      []string `json:"palabras_clave"`
}

// Restricciones описывает ограничения контента
type Restricciones struct {
	NivelEnsenanza    string   `json:"nivel_enseñanza"` // principiante | intermedio | avanzado
	IdiomasPermitidos []string `json:"idiomas_permitidos"`
	TemasEvitar       []string `json:"temas_evitar"`
	TemasFavoritos    []string `json:"temas_favoritos"`
}

// CharacterStats агрегированная статистика по персонажам
type CharacterStats struct {
	PorIdioma         map[string]int `json:"por_idioma"`
	PorNacionalidad   map[string]int `json:"por_nacionalidad"`
	PorNivelEnsenanza map[string]int `json:"por_nivel_enseñanza"`
	PorGenero         GenderStats    `json:"por_genero"`
	Total             int            `json:"total"`
}

// GenderStats количество персонажей по полу
type GenderStats struct {
	M int `json:"M"`
	F int `json:"F"`
}

// ValidationResult результат проверки сообщения на соответствие персонажу
type ValidationResult struct {
	Character  Partner  `json:"character"`
	Violations []string `json:"violations"`
	IsValid    bool     `json:"isValid"`
}
