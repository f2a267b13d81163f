// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import "encoding/json"

// RemoteConfig describes a peer instance.
type RemoteConfig struct {
	URL          string  `json:"url"`
	SearchAPIKey string  `json:"searchApiKey"`
	WriteAPIKey  *string `json:"writeApiKey,omitempty"`
}

// NetworkState is the answer of GET /network.
type NetworkState struct {
	Remotes  map[string]RemoteConfig `json:"remotes"`
	Self     *string                 `json:"self"`
	Sharding *bool                   `json:"sharding,omitempty"`
}

// NetworkUpdate is the body of PATCH /network. A fresh update carries an
// empty remotes object; ResetSelf and ResetRemotes send null instead.
type NetworkUpdate struct {
	selfState    fieldState
	self         string
	remotesState fieldState
	remotes      map[string]*RemoteConfig
	sharding     *bool
}

func NewNetworkUpdate() *NetworkUpdate {
	return &NetworkUpdate{
		remotesState: fieldSet,
		remotes:      make(map[string]*RemoteConfig),
	}
}

func (nu *NetworkUpdate) WithSelf(name string) *NetworkUpdate {
	nu.selfState = fieldSet
	nu.self = name
	return nu
}

func (nu *NetworkUpdate) ResetSelf() *NetworkUpdate {
	nu.selfState = fieldReset
	nu.self = ""
	return nu
}

// WithRemote adds or replaces a peer.
func (nu *NetworkUpdate) WithRemote(name string, remote RemoteConfig) *NetworkUpdate {
	nu.remote(name, &remote)
	return nu
}

// RemoveRemote drops a peer by sending it as null.
func (nu *NetworkUpdate) RemoveRemote(name string) *NetworkUpdate {
	nu.remote(name, nil)
	return nu
}

func (nu *NetworkUpdate) ResetRemotes() *NetworkUpdate {
	nu.remotesState = fieldReset
	nu.remotes = nil
	return nu
}

func (nu *NetworkUpdate) WithSharding(enabled bool) *NetworkUpdate {
	nu.sharding = &enabled
	return nu
}

func (nu *NetworkUpdate) remote(name string, remote *RemoteConfig) {
	if nu.remotesState != fieldSet || nu.remotes == nil {
		nu.remotesState = fieldSet
		nu.remotes = make(map[string]*RemoteConfig)
	}
	nu.remotes[name] = remote
}

func (nu NetworkUpdate) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 3)
	switch nu.selfState {
	case fieldReset:
		body["self"] = nil
	case fieldSet:
		body["self"] = nu.self
	}
	switch nu.remotesState {
	case fieldReset:
		body["remotes"] = nil
	case fieldSet:
		remotes := nu.remotes
		if remotes == nil {
			remotes = map[string]*RemoteConfig{}
		}
		body["remotes"] = remotes
	}
	if nu.sharding != nil {
		body["sharding"] = *nu.sharding
	}
	return json.Marshal(body)
}
