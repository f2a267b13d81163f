// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/arrange"
	"github.com/xmidt-org/meili/transport"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Keys that flags and the environment may set individually. Viper leaves
// them out of UnmarshalKey("meilisearch"), so they are read one by one.
const (
	hostKey   = "meilisearch.host"
	apiKeyKey = "meilisearch.apikey"
)

func setupFlagSet(fs *pflag.FlagSet) {
	fs.StringP("file", "f", "", "the configuration file to use.  Overrides the search path.")
	fs.BoolP("debug", "d", false, "enables debug logging.  Overrides configuration.")
	fs.BoolP("version", "v", false, "print version and exit")
	fs.String("host", "", "the Meilisearch URL.  Overrides configuration.")
	fs.String("api-key", "", "the api key sent with every request.  Overrides configuration.")
	fs.Duration("interval", 0, "time between two polls of a task.")
	fs.Duration("timeout", 0, "how long to wait for a task before giving up.")
	fs.Duration("expires", 0, "lifetime of a minted tenant token.  Zero never expires.")
	fs.String("search-rules", `["*"]`, "JSON search rules of a minted tenant token.")
}

// setup parses the flags and reads the configuration. A missing
// configuration file is fine unless one was named with --file.
func setup(args []string) (*pflag.FlagSet, *viper.Viper, *zap.Logger, error) {
	l, err := zap.NewDevelopment() // initial value
	if err != nil {
		return nil, nil, l, fmt.Errorf("failed to create zap logger: %w", err)
	}

	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	setupFlagSet(fs)
	err = fs.Parse(args)
	if err != nil {
		return fs, nil, l, fmt.Errorf("failed to parse args: %w", err)
	}

	v := viper.New()
	for key, env := range map[string]string{
		hostKey:   "MEILI_HOST",
		apiKeyKey: "MEILI_MASTER_KEY",
	} {
		if err = v.BindEnv(key, env); err != nil {
			return fs, v, l, err
		}
	}
	for key, flag := range map[string]string{
		hostKey:   "host",
		apiKeyKey: "api-key",
	} {
		if err = v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fs, v, l, err
		}
	}

	if file, _ := fs.GetString("file"); len(file) > 0 {
		v.SetConfigFile(file)
		err = v.ReadInConfig()
	} else {
		v.SetConfigName(applicationName)
		v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
		v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
		v.AddConfigPath(".")
		err = v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			err = nil
		}
	}
	if err != nil {
		return fs, v, l, fmt.Errorf("failed to read config file: %w", err)
	}

	var c sallust.Config
	err = v.UnmarshalKey("logging", &c, arrange.ComposeDecodeHooks(sallust.DecodeHook))
	if err != nil {
		return fs, v, l, err
	}
	if debug, _ := fs.GetBool("debug"); debug {
		c.Level = "DEBUG"
	}

	l, err = c.Build()
	return fs, v, l, err
}

func printVersionInfo(w io.Writer) {
	fmt.Fprintf(w, "%s:\n", applicationName)
	fmt.Fprintf(w, "  version: \t%s\n", Version)
	fmt.Fprintf(w, "  client: \t%s\n", transport.UserAgent())
	fmt.Fprintf(w, "  go version: \t%s\n", runtime.Version())
	fmt.Fprintf(w, "  built time: \t%s\n", BuildTime)
	fmt.Fprintf(w, "  git commit: \t%s\n", GitCommit)
	fmt.Fprintf(w, "  os/arch: \t%s/%s\n", runtime.GOOS, runtime.GOARCH)
}
