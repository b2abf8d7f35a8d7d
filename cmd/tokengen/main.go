// Command tokengen issues the bearer token an upstream service presents to the API,
// or a fresh random secret to use as SERVICE_JWT_SECRET.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	subject := pflag.String("subject", "atm-gateway", "calling service id (token subject)")
	ttl := pflag.Duration("ttl", 24*time.Hour, "token lifetime")
	newSecret := pflag.Bool("new-secret", false, "print a random secret and exit")
	pflag.Parse()

	if *newSecret {
		secret, err := utils.GenerateSecret(utils.MinSecretBytes)
		if err != nil {
			fail(err)
		}
		fmt.Println(secret)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fail(err)
	}
	if cfg.ServiceJWTSecret == "" {
		fail(fmt.Errorf("SERVICE_JWT_SECRET is not set"))
	}

	token, err := utils.GenerateJWT(*subject, cfg.ServiceJWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		fail(err)
	}
	// Round-trip through the verifier so a misconfigured secret is caught here.
	if _, err := utils.ParseAndValidateJWT(token, cfg.ServiceJWTSecret, cfg.JWTIssuer); err != nil {
		fail(err)
	}
	fmt.Println(token)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "tokengen:", err)
	os.Exit(1)
}
