package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID                  string    `json:"id"`                           // идентификатор пользователя на backend
	Nombre              string    `json:"nombre"`                       // отображаемое имя
	Email               string    `json:"email"`                        // email для входа
	IdiomaPrincipal     string    `json:"idioma_principal,omitempty"`   // родной язык
	IdiomaObjetivo      string    `json:"idioma_objetivo,omitempty"`    // изучаемый язык
	NivelIdioma         string    `json:"nivel_idioma,omitempty"`       // principiante | intermedio | avanzado
	Pais                string    `json:"pais,omitempty"`               // страна
	PreferenciaGenero   string    `json:"preferencia_genero,omitempty"` // M | F | A
	CreatedAt           time.Time `json:"createdAt,omitzero"`
	UpdatedAt           time.Time `json:"updatedAt,omitzero"`
	Intereses           []string  `json:"intereses,omitempty"`
	Edad                int       `json:"edad,omitempty"`
	EmailVerified       bool      `json:"emailVerified"`
	OnboardingCompleted bool      `json:"onboardingCompleted"` // гейт для редиректа на onboarding
}

// Clone возвращает глубокую копию пользователя
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Intereses != nil {
		c.Intereses = append([]string(nil), u.Intereses...)
	}
	return &c
}

// UserPatch описывает частичное обновление профиля.
// nil поле означает "не менять".
type UserPatch struct {
	Nombre              *string
	Email               *string
	IdiomaPrincipal     *string
	IdiomaObjetivo      *string
	NivelIdioma         *string
	Pais                *string
	PreferenciaGenero   *string
	Intereses           []string
	Edad                *int
	EmailVerified       *bool
	OnboardingCompleted *bool
}

// Apply merges the patch into a copy of u and returns it.
// OnboardingCompleted never goes back from true to false.
func (p UserPatch) Apply(u *User) *User {
	out := u.Clone()
	if out == nil {
		return nil
	}
	setString(&out.Nombre, p.Nombre)
	setString(&out.Email, p.Email)
	setString(&out.IdiomaPrincipal, p.IdiomaPrincipal)
	setString(&out.IdiomaObjetivo, p.IdiomaObjetivo)
	setString(&out.NivelIdioma, p.NivelIdioma)
	setString(&out.Pais, p.Pais)
	setString(&out.PreferenciaGenero, p.PreferenciaGenero)
	if p.Intereses != nil {
		out.Intereses = append([]string(nil), p.Intereses...)
	}
	if p.Edad != nil {
		out.Edad = *p.Edad
	}
	if p.EmailVerified != nil {
		out.EmailVerified = *p.EmailVerified
	}
	if p.OnboardingCompleted != nil && *p.OnboardingCompleted {
		out.OnboardingCompleted = true
	}
	return out
}

// PatchFromUser builds a patch that overwrites every profile field with the values of u.
// Empty strings and zero values are skipped so a sparse server response does not wipe local data.
func PatchFromUser(u *User) UserPatch {
	var p UserPatch
	if u == nil {
		return p
	}
	p.Nombre = nonEmpty(u.Nombre)
	p.Email = nonEmpty(u.Email)
	p.IdiomaPrincipal = nonEmpty(u.IdiomaPrincipal)
	p.IdiomaObjetivo = nonEmpty(u.IdiomaObjetivo)
	p.NivelIdioma = nonEmpty(u.NivelIdioma)
	p.Pais = nonEmpty(u.Pais)
	p.PreferenciaGenero = nonEmpty(u.PreferenciaGenero)
	if len(u.Intereses) > 0 {
		p.Intereses = u.Intereses
	}
	if u.Edad > 0 {
		edad := u.Edad
		p.Edad = &edad
	}
	if u.EmailVerified {
		v := true
		p.EmailVerified = &v
	}
	if u.OnboardingCompleted {
		v := true
		p.OnboardingCompleted = &v
	}
	return p
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
