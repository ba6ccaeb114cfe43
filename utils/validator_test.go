package utils

import "testing"

type credentialInput struct {
	Username string `validate:"required,usernameok"`
	Password string `validate:"pwdmin"`
	Email    string `validate:"emailok"`
}

func TestValidateStruct(t *testing.T) {
	cases := []struct {
		name    string
		in      credentialInput
		wantErr bool
	}{
		{"valid full", credentialInput{Username: "alice_01", Password: "secret1", Email: "a@example.com"}, false},
		{"optional fields empty", credentialInput{Username: "alice-01"}, false},
		{"missing required", credentialInput{Password: "secret1"}, true},
		{"username with spaces", credentialInput{Username: "alice smith"}, true},
		{"username too short", credentialInput{Username: "ab"}, true},
		{"password too short", credentialInput{Username: "alice", Password: "short"}, true},
		{"malformed email", credentialInput{Username: "alice", Email: "not-an-email"}, true},
	}
	for _, c := range cases {
		err := ValidateStruct(&c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("%s: err=%v, wantErr=%v", c.name, err, c.wantErr)
		}
	}
}
