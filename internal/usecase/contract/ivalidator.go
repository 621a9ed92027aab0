package usecasecontract

// IValidator checks input structs against their `validate` tags.
type IValidator interface {
	ValidateStruct(s interface{}) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}
