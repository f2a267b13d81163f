// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/xmidt-org/meili/client"
	"github.com/xmidt-org/meili/model"
)

var errUnhealthy = errors.New("meilisearch is not available")

func runCommand(c *client.Client, fs *pflag.FlagSet, w io.Writer) error {
	args := fs.Args()
	if len(args) == 0 {
		return errUsage
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch args[0] {
	case "health":
		if !c.IsHealthy(ctx) {
			return errUnhealthy
		}
		fmt.Fprintln(w, "available")
		return nil
	case "version":
		v, err := c.GetVersion(ctx)
		if err != nil {
			return err
		}
		return printJSON(w, v)
	case "stats":
		s, err := c.GetStats(ctx)
		if err != nil {
			return err
		}
		return printJSON(w, s)
	case "wait":
		if len(args) != 2 {
			return errUsage
		}
		return waitCommand(ctx, c, fs, args[1], w)
	case "token":
		if len(args) != 2 {
			return errUsage
		}
		return tokenCommand(c, fs, args[1], w)
	case "watch":
		return watchCommand(ctx, c, w)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func waitCommand(ctx context.Context, c *client.Client, fs *pflag.FlagSet, arg string, w io.Writer) error {
	uid, err := cast.ToUint32E(arg)
	if err != nil {
		return fmt.Errorf("%w: invalid task uid %q", errUsage, arg)
	}
	interval, _ := fs.GetDuration("interval")
	timeout, _ := fs.GetDuration("timeout")

	task, err := c.WaitForTask(ctx, model.TaskUID(uid), interval, timeout)
	if err != nil {
		return err
	}
	printTask(w, task)
	if model.IsFailure(task) {
		failure := model.UnwrapFailure(task)
		return &failure
	}
	return nil
}

func tokenCommand(c *client.Client, fs *pflag.FlagSet, apiKeyUID string, w io.Writer) error {
	raw, _ := fs.GetString("search-rules")
	var rules any
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return fmt.Errorf("%w: invalid search rules: %w", errUsage, err)
	}

	var expiresAt *time.Time
	if expires, _ := fs.GetDuration("expires"); expires != 0 {
		at := time.Now().Add(expires)
		expiresAt = &at
	}

	token, err := c.GenerateTenantToken(apiKeyUID, rules, "", expiresAt)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)
	return nil
}

// watchCommand prints tasks as they finish, until interrupted.
func watchCommand(ctx context.Context, c *client.Client, w io.Writer) error {
	l, err := c.NewTaskListener(client.TaskListenerConfig{
		Listener: client.ListenerFunc(func(tasks []model.Task) {
			for _, t := range tasks {
				printTask(w, t)
			}
		}),
		PullInterval: time.Second,
	})
	if err != nil {
		return err
	}
	if err = l.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return l.Stop(context.Background())
}

func printTask(w io.Writer, t model.Task) {
	content := t.Content()
	fmt.Fprintf(w, "%d\t%s\t%s\t%s", content.UID, content.IndexUID, t.Status(), content.Type.Kind)
	if model.IsFailure(t) {
		failure := model.UnwrapFailure(t)
		fmt.Fprintf(w, "\t%s", failure.Code)
	}
	fmt.Fprintln(w)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
