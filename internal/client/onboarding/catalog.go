package onboarding

// Языки, которые можно выбрать как родной или изучаемый
var Languages = []string{
	"español", "inglés", "francés", "portugués", "alemán",
	"italiano", "japonés", "chino", "coreano", "ruso",
}

// Interests темы для разговоров, выбор необязателен
var Interests = []string{
	"viajes", "cultura", "deportes", "música", "cine", "literatura", "tecnología",
	"cocina", "arte", "historia", "ciencia", "negocios", "moda", "naturaleza",
}

// Countries страны проживания; "Otro" для остальных
var Countries = []string{
	"España", "México", "Argentina", "Colombia", "Chile", "Perú", "Venezuela",
	"Estados Unidos", "Reino Unido", "Canadá", "Francia", "Alemania", "Italia",
	"Brasil", "Japón", "China", "Corea del Sur", "Rusia", "Otro",
}

// GenderOption вариант предпочтения пола собеседника
type GenderOption struct {
	Value string
	Label string
}

// GenderOptions в порядке показа
var GenderOptions = []GenderOption{
	{Value: "A", Label: "Sin preferencia"},
	{Value: "F", Label: "Femenino"},
	{Value: "M", Label: "Masculino"},
}
