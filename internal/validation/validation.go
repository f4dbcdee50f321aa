package validation

import "regexp"

// FieldError is one violated rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	nameRe     = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	phoneRe    = regexp.MustCompile(`^[0-9]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// Name validates a person-name field. label names the field in the message
// ("nombre", "apellido paterno", "apellido materno").
func Name(value, label string) string {
	if value == "" {
		return "El " + label + " es obligatorio"
	}
	if len([]rune(value)) > 40 {
		return "El " + label + " no puede tener más de 40 caracteres"
	}
	if !nameRe.MatchString(value) {
		return "El " + label + " solo puede contener letras y espacios"
	}
	return ""
}

func Phone(value string) string {
	if value == "" {
		return "El número de teléfono es obligatorio"
	}
	if len(value) != 10 {
		return "El número de teléfono debe tener 10 dígitos"
	}
	if !phoneRe.MatchString(value) {
		return "El número de teléfono solo puede contener dígitos"
	}
	return ""
}

func Email(value string) string {
	if value == "" {
		return "El correo electrónico es obligatorio"
	}
	if len(value) > 40 {
		return "El correo electrónico no puede tener más de 40 caracteres"
	}
	if !emailRe.MatchString(value) {
		return "Por favor ingrese un correo electrónico válido"
	}
	return ""
}

func Username(value string) string {
	if value == "" {
		return "El nombre de usuario es obligatorio"
	}
	if len(value) > 30 {
		return "El nombre de usuario no puede tener más de 30 caracteres"
	}
	if !usernameRe.MatchString(value) {
		return "El nombre de usuario solo puede contener letras, números y guiones bajos"
	}
	return ""
}

func Password(value string) string {
	if value == "" {
		return "La contraseña es obligatoria"
	}
	if len(value) < 8 {
		return "La contraseña debe tener al menos 8 caracteres"
	}
	if len(value) > 100 {
		return "La contraseña no puede tener más de 100 caracteres"
	}
	return ""
}

// UserInput is the field set shared by registration and admin user creation.
type UserInput struct {
	Name           string  `json:"name"`
	LastName       string  `json:"lastName"`
	MotherLastName *string `json:"motherLastName"`
	PhoneNumber    string  `json:"phoneNumber"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
}

// UserPatch is a partial update; nil means the field was not supplied and is
// left untouched.
type UserPatch struct {
	Name           *string `json:"name"`
	LastName       *string `json:"lastName"`
	MotherLastName *string `json:"motherLastName"`
	PhoneNumber    *string `json:"phoneNumber"`
	Email          *string `json:"email"`
	Username       *string `json:"username"`
	Role           *string `json:"role"`
	IsActive       *bool   `json:"isActive"`
}

// Full validates every field of a create request. All rule violations are
// aggregated; callers receive the complete list at once.
func Full(in UserInput) []FieldError {
	var errs []FieldError
	add := func(field, msg string) {
		if msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	add("name", Name(in.Name, "nombre"))
	add("lastName", Name(in.LastName, "apellido paterno"))
	if in.MotherLastName != nil {
		add("motherLastName", Name(*in.MotherLastName, "apellido materno"))
	}
	add("phoneNumber", Phone(in.PhoneNumber))
	add("email", Email(in.Email))
	add("username", Username(in.Username))
	add("password", Password(in.Password))
	if in.Role != "" && in.Role != "user" && in.Role != "admin" {
		add("role", "El rol no es válido")
	}

	return errs
}

// Partial validates only the fields present in a patch; absent fields are not
// defaulted and produce no errors.
func Partial(patch UserPatch) []FieldError {
	var errs []FieldError
	add := func(field, msg string) {
		if msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	if patch.Name != nil {
		add("name", Name(*patch.Name, "nombre"))
	}
	if patch.LastName != nil {
		add("lastName", Name(*patch.LastName, "apellido paterno"))
	}
	if patch.MotherLastName != nil {
		add("motherLastName", Name(*patch.MotherLastName, "apellido materno"))
	}
	if patch.PhoneNumber != nil {
		add("phoneNumber", Phone(*patch.PhoneNumber))
	}
	if patch.Email != nil {
		add("email", Email(*patch.Email))
	}
	if patch.Username != nil {
		add("username", Username(*patch.Username))
	}
	if patch.Role != nil && *patch.Role != "user" && *patch.Role != "admin" {
		add("role", "El rol no es válido")
	}

	return errs
}

// Login checks presence only; format rules do not apply here.
func Login(identifier, password string) []FieldError {
	var errs []FieldError
	if identifier == "" {
		errs = append(errs, FieldError{Field: "identifier", Message: "Se requiere un correo electrónico o nombre de usuario"})
	}
	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "La contraseña es obligatoria"})
	}
	return errs
}
