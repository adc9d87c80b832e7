package domain

type User struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	PasswordHash  string `json:"-"`
	NIK           string `json:"nik"`
	FullName      string `json:"full_name"`
	BirthPlace    string `json:"birth_place,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Religion      string `json:"religion,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Language      string `json:"language"`
}

type CreateUserInput struct {
	Username      string `json:"username" validate:"required,min=4"`
	Password      string `json:"password" validate:"required,min=8"`
	NIK           string `json:"nik" validate:"required,len=16"`
	FullName      string `json:"full_name" validate:"required,min=2"`
	BirthPlace    string `json:"birth_place"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	Religion      string `json:"religion"`
	MaritalStatus string `json:"marital_status"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Language      string `json:"language" validate:"omitempty,oneof=id en"`
}

type UpdateUserInput struct {
	Username      *string `json:"username,omitempty" validate:"omitempty,min=4"`
	Password      *string `json:"password,omitempty" validate:"omitempty,min=8"`
	NIK           *string `json:"nik,omitempty" validate:"omitempty,len=16"`
	FullName      *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	BirthPlace    *string `json:"birth_place,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	Religion      *string `json:"religion,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Language      *string `json:"language,omitempty" validate:"omitempty,oneof=id en"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LanguageDefault is applied when a user registers without a preference.
const LanguageDefault = "id"

func IsValidLanguage(lang string) bool {
	return lang == "id" || lang == "en"
}
