package structs

// IdentityKind tells which storage namespace an identity token names
type IdentityKind string

const (
	IdentityProfile IdentityKind = "profile"
	IdentitySession IdentityKind = "session"
)

// AuthStatus is the login state as shown on the login/account button
type AuthStatus struct {
	LoggedIn bool   `json:"loggedIn"`
	Label    string `json:"label"`
}
