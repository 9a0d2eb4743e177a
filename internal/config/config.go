// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Chat struct {
	// DailyLimit is the number of chat messages a free-plan account may
	// send per calendar day.
	DailyLimit int `koanf:"dailylimit"`

	// HistoryLimit is the maximum number of messages kept in an
	// account's chat log.
	HistoryLimit int `koanf:"historylimit"`

	// WindowSize is the number of most recent log messages fed to the
	// model on each request.
	WindowSize int `koanf:"windowsize"`

	// Model is the Gemini model used to generate replies, e.g. gemini-2.5-flash.
	Model string `koanf:"model"`
}

type Token struct {
	// Secret is the HMAC secret used to sign bearer tokens.
	Secret string `koanf:"secret"`
}

type Config struct {
	config.Common

	// Chat is the configuration of the chat pipeline.
	Chat Chat `koanf:"chat"`

	// Token is the configuration for bearer tokens.
	Token Token `koanf:"token"`
}
