package entities

// AuthUser is the identity provider's view of a user.
type AuthUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"emailConfirmed"`
}

type Session struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	ExpiresIn    int      `json:"expiresIn"`
	User         AuthUser `json:"user"`
}

// ProfileRow is the remote profile record inserted at sign-up, keyed by the
// identity provider's user id.
type ProfileRow struct {
	ID          string   `json:"id" firestore:"id"`
	Email       string   `json:"email" firestore:"email"`
	Role        UserRole `json:"role" firestore:"role"`
	FirstName   string   `json:"first_name,omitempty" firestore:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty" firestore:"last_name,omitempty"`
	Phone       string   `json:"phone,omitempty" firestore:"phone,omitempty"`
	CompanyName string   `json:"company_name,omitempty" firestore:"company_name,omitempty"`
	KvkNumber   string   `json:"kvk_number,omitempty" firestore:"kvk_number,omitempty"`
	Plan        Plan     `json:"subscription_plan" firestore:"subscription_plan"`
}
