package cli

const characterTemplate = `
=== {{.Nombre}} ===

ID:           {{.ID}}
Nacionalidad: {{.Nacionalidad}}
Género:       {{.Genero}}
Idioma:       {{.IdiomaObjetivo}}
{{- with .Personalidad}}
{{- if .Edad}}
Edad:         {{.Edad}}
{{- end}}
{{- if .Profesion}}
Profesión:    {{.Profesion}}
{{- end}}
{{- if .Descripcion}}

{{.Descripcion}}
{{- end}}
{{- if .Hobbies}}
Hobbies:      {{join .Hobbies ", "}}
{{- end}}
{{- end}}
{{- with .EstiloConversacional}}
{{- if .Tono}}
Tono:         {{.Tono}} ({{.NivelFormalidad}})
{{- end}}
{{- end}}
{{- with .Restricciones}}
{{- if .NivelEnsenanza}}
Nivel:        {{.NivelEnsenanza}}
{{- end}}
{{- end}}
`

const statsTemplate = `
=== Characters ===

Total: {{.Total}}
Female: {{.PorGenero.F}}  Male: {{.PorGenero.M}}
{{- if .PorIdioma}}

By language:
{{- range $k, $v := .PorIdioma}}
  {{$k}}: {{$v}}
{{- end}}
{{- end}}
{{- if .PorNacionalidad}}

By nationality:
{{- range $k, $v := .PorNacionalidad}}
  {{$k}}: {{$v}}
{{- end}}
{{- end}}
`
