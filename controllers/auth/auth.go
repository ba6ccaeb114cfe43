package auth

// ActionRequest is the decoded body of a /api/db call. One struct covers every
// action; each handler checks the fields it needs and ignores the rest, which
// matches the loosely-typed widget contract.
type ActionRequest struct {
	Action     string `json:"action"`
	Username   string `json:"username,omitempty" validate:"usernameok"`
	Password   string `json:"password,omitempty" validate:"pwdmin"`
	Email      string `json:"email,omitempty" validate:"emailok"`
	PrimaryUse string `json:"primary_use,omitempty"`
	Budget     string `json:"budget,omitempty"`
	ModelID    string `json:"model_id,omitempty"`
	ModelName  string `json:"model_name,omitempty"`
	ModelBrand string `json:"model_brand,omitempty"`
	RecID      uint   `json:"rec_id,omitempty"`
}

// Profile is the non-secret view of an account returned by auth actions.
type Profile struct {
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	PrimaryUse string `json:"primaryUse,omitempty"`
	Budget     string `json:"budget,omitempty"`
}

// Result is the structured payload every auth action returns. Anticipated
// failures set Success=false with a message instead of erroring.
type Result struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	User    *Profile `json:"user,omitempty"`
}
