// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import "encoding/json"

type ChatWorkspace struct {
	UID string `json:"uid"`
}

type ChatWorkspacesQuery struct {
	Offset *int `url:"offset,omitempty"`
	Limit  *int `url:"limit,omitempty"`
}

type ChatWorkspacesResults struct {
	Results []ChatWorkspace `json:"results"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
	Total   int             `json:"total"`
}

// ChatPrompts holds the prompts of a workspace. Extra carries prompts this
// client has no field for; they are flattened into the same JSON object.
type ChatPrompts struct {
	System              *string
	SearchDescription   *string
	SearchQParam        *string
	SearchIndexUIDParam *string
	Extra               map[string]string
}

const (
	promptSystem              = "system"
	promptSearchDescription   = "searchDescription"
	promptSearchQParam        = "searchQParam"
	promptSearchIndexUIDParam = "searchIndexUidParam"
)

func (p ChatPrompts) MarshalJSON() ([]byte, error) {
	body := make(map[string]string, len(p.Extra)+4)
	for k, v := range p.Extra {
		body[k] = v
	}
	for name, v := range map[string]*string{
		promptSystem:              p.System,
		promptSearchDescription:   p.SearchDescription,
		promptSearchQParam:        p.SearchQParam,
		promptSearchIndexUIDParam: p.SearchIndexUIDParam,
	} {
		if v != nil {
			body[name] = *v
		}
	}
	return json.Marshal(body)
}

func (p *ChatPrompts) UnmarshalJSON(b []byte) error {
	var body map[string]string
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	*p = ChatPrompts{}
	for k, v := range body {
		switch k {
		case promptSystem:
			p.System = &v
		case promptSearchDescription:
			p.SearchDescription = &v
		case promptSearchQParam:
			p.SearchQParam = &v
		case promptSearchIndexUIDParam:
			p.SearchIndexUIDParam = &v
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[k] = v
		}
	}
	return nil
}

// ChatWorkspaceSettings configures the LLM provider of a workspace. Unset
// fields are left unchanged by an update.
type ChatWorkspaceSettings struct {
	Source       *string      `json:"source,omitempty"`
	OrgID        *string      `json:"orgId,omitempty"`
	ProjectID    *string      `json:"projectId,omitempty"`
	APIVersion   *string      `json:"apiVersion,omitempty"`
	DeploymentID *string      `json:"deploymentId,omitempty"`
	BaseURL      *string      `json:"baseUrl,omitempty"`
	APIKey       *string      `json:"apiKey,omitempty"`
	Prompts      *ChatPrompts `json:"prompts,omitempty"`
}
