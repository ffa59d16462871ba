package xclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the app-only OAuth2 token endpoint.
const DefaultTokenURL = "https://api.twitter.com/oauth2/token"

// BearerToken mints an app-only bearer token via the OAuth2
// client-credentials grant (Basic auth with the consumer key/secret pair).
func BearerToken(ctx context.Context, tokenURL, consumerKey, consumerSecret string, timeout time.Duration) (string, error) {
	cc := clientcredentials.Config{
		ClientID:     consumerKey,
		ClientSecret: consumerSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
	tok, err := cc.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("bearer token exchange: %w", err)
	}
	return tok.AccessToken, nil
}
