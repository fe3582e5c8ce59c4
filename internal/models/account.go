package models

// DateLayout is the wire format for date_joined.
const DateLayout = "2006-01-02"

// Account is the persisted customer record. ID is assigned by the repository
// at creation time and is immutable afterwards. PhoneNumber is nullable;
// DateJoined always holds a YYYY-MM-DD value once the record is persisted.
type Account struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  string  `json:"date_joined"`
}

// AccountFromPayload populates an Account from a decoded JSON object.
// The payload is expected to have passed validation already: wrong-typed
// values are skipped, unknown keys are ignored, and absent optional fields
// leave the zero value in place.
func AccountFromPayload(data map[string]any) *Account {
	account := &Account{}
	if v, ok := data["name"].(string); ok {
		account.Name = v
	}
	if v, ok := data["email"].(string); ok {
		account.Email = v
	}
	if v, ok := data["address"].(string); ok {
		account.Address = v
	}
	if v, ok := data["phone_number"].(string); ok {
		account.PhoneNumber = &v
	}
	if v, ok := data["date_joined"].(string); ok {
		account.DateJoined = v
	}
	return account
}
