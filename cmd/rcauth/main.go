package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/foxyfoxza/ringcentral-go/client"
	"github.com/foxyfoxza/ringcentral-go/internal/config"
	"github.com/foxyfoxza/ringcentral-go/platform"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("rcauth failed")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic: %v", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname("rcauth")
	log.Debug().
		Dur("access_token_expiry", c.GetAccessTokenExpiry()).
		Dur("refresh_token_expiry", c.GetRefreshTokenExpiry()).
		Dur("remember_refresh_token_expiry", c.GetRememberRefreshTokenExpiry()).
		Msg("Token validity windows")

	transport := client.NewHTTPTransport(
		client.WithUserAgent(c.GetAppName(), c.GetAppVersion()),
		client.WithTimeout(c.GetRequestTimeout()),
	)

	p, err := platform.New(c.GetAppKey(), c.GetAppSecret(), c.GetServerURL(), transport)
	if err != nil {
		return fmt.Errorf("platform.New: %w", err)
	}

	events, unsub := p.SubscribeAuthRefresh()
	defer unsub()
	go func() {
		for resp := range events {
			log.Debug().Int("status", resp.StatusCode).Msg("Auth endpoint round trip")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := p.Login(ctx, c.GetUsername(), c.GetExtension(), c.GetPassword(), false); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Info().Msg("Logged in")

	resp, err := p.Get(ctx, "/restapi/v1.0/account/~/extension/~", url.Values{})
	if err != nil {
		return fmt.Errorf("extension info: %w", err)
	}
	log.Info().Int("status", resp.StatusCode).Msg("Fetched extension info")
	fmt.Println(string(resp.Body))

	if _, err := p.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	log.Info().Msg("Logged out")
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
