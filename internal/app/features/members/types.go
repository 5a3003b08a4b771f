// internal/app/features/members/types.go
package members

// createRequest is the body of POST /api/users.
//
// imageUrl is required by this endpoint even though the model treats it as
// optional; existing clients depend on the stricter check.
type createRequest struct {
	User              string `json:"user"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	ImageURL          string `json:"imageUrl"`
	AdharNumber       string `json:"adharNumber"`
	BankAccountNumber string `json:"bankAccountNumber"`
}

// updateRequest is the body of PUT /api/members/{id}. Pointer fields
// distinguish "not supplied" from "set to empty".
type updateRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	ImageURL          *string `json:"imageUrl"`
	AdharNumber       *string `json:"adharNumber"`
	BankAccountNumber *string `json:"bankAccountNumber"`
}
