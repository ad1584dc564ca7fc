package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/auth"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) UpdateUserEmail(ctx context.Context, uid, email string) error {
	params := (&auth.UserToUpdate{}).
		Email(email)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

// SignInWithEmailPassword exchanges credentials for an ID token through
// the Identity Toolkit REST API; the Admin SDK has no password sign-in.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	reqBody, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		IDToken string `json:"idToken"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sign in failed: %s", result.Error.Message)
	}

	return result.IDToken, nil
}
