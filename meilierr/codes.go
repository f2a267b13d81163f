// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package meilierr

import (
	"encoding/json"
	"strings"
)

// ErrorCode is the machine readable code of a server error. Codes introduced
// by newer servers decode as CodeUnknown; ServerError keeps the raw string.
type ErrorCode string

const (
	CodeUnknown ErrorCode = "unknown"

	// indexes
	CodeIndexCreationFailed                    ErrorCode = "index_creation_failed"
	CodeIndexAlreadyExists                     ErrorCode = "index_already_exists"
	CodeIndexNotFound                          ErrorCode = "index_not_found"
	CodeInvalidIndexUID                        ErrorCode = "invalid_index_uid"
	CodeIndexNotAccessible                     ErrorCode = "index_not_accessible"
	CodeInvalidIndexOffset                     ErrorCode = "invalid_index_offset"
	CodeInvalidIndexLimit                      ErrorCode = "invalid_index_limit"
	CodeInvalidSwapIndexes                     ErrorCode = "invalid_swap_indexes"
	CodeDuplicateIndexFound                    ErrorCode = "duplicate_index_found"
	CodeIndexPrimaryKeyAlreadyExists           ErrorCode = "index_primary_key_already_exists"
	CodeIndexPrimaryKeyNoCandidateFound        ErrorCode = "index_primary_key_no_candidate_found"
	CodeIndexPrimaryKeyMultipleCandidatesFound ErrorCode = "index_primary_key_multiple_candidates_found"

	// settings
	CodeInvalidRankingRule           ErrorCode = "invalid_settings_ranking_rules"
	CodeInvalidSettingsFilterable    ErrorCode = "invalid_settings_filterable_attributes"
	CodeInvalidSettingsSortable      ErrorCode = "invalid_settings_sortable_attributes"
	CodeInvalidSettingsSearchable    ErrorCode = "invalid_settings_searchable_attributes"
	CodeInvalidSettingsDisplayed     ErrorCode = "invalid_settings_displayed_attributes"
	CodeInvalidSettingsDistinct      ErrorCode = "invalid_settings_distinct_attribute"
	CodeInvalidSettingsStopWords     ErrorCode = "invalid_settings_stop_words"
	CodeInvalidSettingsSynonyms      ErrorCode = "invalid_settings_synonyms"
	CodeInvalidSettingsTypoTolerance ErrorCode = "invalid_settings_typo_tolerance"
	CodeInvalidSettingsPagination    ErrorCode = "invalid_settings_pagination"
	CodeInvalidSettingsFaceting      ErrorCode = "invalid_settings_faceting"

	// documents
	CodeMissingPrimaryKey         ErrorCode = "missing_document_id"
	CodeInvalidDocumentID         ErrorCode = "invalid_document_id"
	CodeDocumentNotFound          ErrorCode = "document_not_found"
	CodeInvalidDocumentFields     ErrorCode = "invalid_document_fields"
	CodeInvalidDocumentFilter     ErrorCode = "invalid_document_filter"
	CodeInvalidDocumentOffset     ErrorCode = "invalid_document_offset"
	CodeInvalidDocumentLimit      ErrorCode = "invalid_document_limit"
	CodePrimaryKeyInferenceFailed ErrorCode = "primary_key_inference_failed"
	CodeMissingDocumentFilter     ErrorCode = "missing_document_filter"

	// search
	CodeInvalidSearchQ      ErrorCode = "invalid_search_q"
	CodeInvalidSearchFilter ErrorCode = "invalid_search_filter"
	CodeInvalidSearchSort   ErrorCode = "invalid_search_sort"
	CodeInvalidSearchLimit  ErrorCode = "invalid_search_limit"
	CodeInvalidSearchOffset ErrorCode = "invalid_search_offset"
	CodeInvalidSearchFacets ErrorCode = "invalid_search_facets"

	// keys and auth
	CodeMissingAuthorizationHeader ErrorCode = "missing_authorization_header"
	CodeInvalidAPIKey              ErrorCode = "invalid_api_key"
	CodeAPIKeyNotFound             ErrorCode = "api_key_not_found"
	CodeAPIKeyAlreadyExists        ErrorCode = "api_key_already_exists"
	CodeInvalidAPIKeyActions       ErrorCode = "invalid_api_key_actions"
	CodeInvalidAPIKeyIndexes       ErrorCode = "invalid_api_key_indexes"
	CodeInvalidAPIKeyExpiresAt     ErrorCode = "invalid_api_key_expires_at"
	CodeInvalidAPIKeyDescription   ErrorCode = "invalid_api_key_description"
	CodeInvalidAPIKeyName          ErrorCode = "invalid_api_key_name"
	CodeInvalidAPIKeyUID           ErrorCode = "invalid_api_key_uid"
	CodeImmutableAPIKeyUID         ErrorCode = "immutable_api_key_uid"
	CodeMissingMasterKey           ErrorCode = "missing_master_key"

	// tasks and batches
	CodeTaskNotFound          ErrorCode = "task_not_found"
	CodeBatchNotFound         ErrorCode = "batch_not_found"
	CodeMissingTaskFilters    ErrorCode = "missing_task_filters"
	CodeInvalidTaskUIDs       ErrorCode = "invalid_task_uids"
	CodeInvalidTaskStatuses   ErrorCode = "invalid_task_statuses"
	CodeInvalidTaskTypes      ErrorCode = "invalid_task_types"
	CodeInvalidTaskCanceledBy ErrorCode = "invalid_task_canceled_by"

	// webhooks, network, chats
	CodeWebhookNotFound       ErrorCode = "webhook_not_found"
	CodeImmutableWebhook      ErrorCode = "immutable_webhook"
	CodeInvalidWebhookURL     ErrorCode = "invalid_webhook_url"
	CodeInvalidWebhookHeaders ErrorCode = "invalid_webhook_headers"
	CodeInvalidNetworkSelf    ErrorCode = "invalid_network_self"
	CodeInvalidNetworkRemotes ErrorCode = "invalid_network_remotes"
	CodeChatNotFound          ErrorCode = "chat_not_found"
	CodeFeatureNotEnabled     ErrorCode = "feature_not_enabled"

	// system
	CodeInternal                 ErrorCode = "internal"
	CodeDumpProcessFailed        ErrorCode = "dump_process_failed"
	CodeNoSpaceLeftOnDevice      ErrorCode = "no_space_left_on_device"
	CodeTooManyOpenFiles         ErrorCode = "too_many_open_files"
	CodeInvalidContentType       ErrorCode = "invalid_content_type"
	CodeMissingContentType       ErrorCode = "missing_content_type"
	CodeMalformedPayload         ErrorCode = "malformed_payload"
	CodeMissingPayload           ErrorCode = "missing_payload"
	CodePayloadTooLarge          ErrorCode = "payload_too_large"
	CodeBadRequest               ErrorCode = "bad_request"
	CodeDatabaseSizeLimitReached ErrorCode = "database_size_limit_reached"
)

// Older servers used different spellings for some codes.
var codeAliases = map[ErrorCode]ErrorCode{
	"invalid_ranking_rule":        CodeInvalidRankingRule,
	"index_already_exist":         CodeIndexAlreadyExists,
	"invalid_state":               CodeInternal,
	"missing_primary_key":         CodeMissingPrimaryKey,
	"primary_key_already_present": CodeIndexPrimaryKeyAlreadyExists,
}

var knownCodes = map[ErrorCode]struct{}{}

func init() {
	for _, c := range []ErrorCode{
		CodeIndexCreationFailed, CodeIndexAlreadyExists, CodeIndexNotFound, CodeInvalidIndexUID,
		CodeIndexNotAccessible, CodeInvalidIndexOffset, CodeInvalidIndexLimit, CodeInvalidSwapIndexes,
		CodeDuplicateIndexFound, CodeIndexPrimaryKeyAlreadyExists, CodeIndexPrimaryKeyNoCandidateFound,
		CodeIndexPrimaryKeyMultipleCandidatesFound,
		CodeInvalidRankingRule, CodeInvalidSettingsFilterable, CodeInvalidSettingsSortable,
		CodeInvalidSettingsSearchable, CodeInvalidSettingsDisplayed, CodeInvalidSettingsDistinct,
		CodeInvalidSettingsStopWords, CodeInvalidSettingsSynonyms, CodeInvalidSettingsTypoTolerance,
		CodeInvalidSettingsPagination, CodeInvalidSettingsFaceting,
		CodeMissingPrimaryKey, CodeInvalidDocumentID, CodeDocumentNotFound, CodeInvalidDocumentFields,
		CodeInvalidDocumentFilter, CodeInvalidDocumentOffset, CodeInvalidDocumentLimit,
		CodePrimaryKeyInferenceFailed, CodeMissingDocumentFilter,
		CodeInvalidSearchQ, CodeInvalidSearchFilter, CodeInvalidSearchSort, CodeInvalidSearchLimit,
		CodeInvalidSearchOffset, CodeInvalidSearchFacets,
		CodeMissingAuthorizationHeader, CodeInvalidAPIKey, CodeAPIKeyNotFound, CodeAPIKeyAlreadyExists,
		CodeInvalidAPIKeyActions, CodeInvalidAPIKeyIndexes, CodeInvalidAPIKeyExpiresAt,
		CodeInvalidAPIKeyDescription, CodeInvalidAPIKeyName, CodeInvalidAPIKeyUID,
		CodeImmutableAPIKeyUID, CodeMissingMasterKey,
		CodeTaskNotFound, CodeBatchNotFound, CodeMissingTaskFilters, CodeInvalidTaskUIDs,
		CodeInvalidTaskStatuses, CodeInvalidTaskTypes, CodeInvalidTaskCanceledBy,
		CodeWebhookNotFound, CodeImmutableWebhook, CodeInvalidWebhookURL, CodeInvalidWebhookHeaders,
		CodeInvalidNetworkSelf, CodeInvalidNetworkRemotes, CodeChatNotFound, CodeFeatureNotEnabled,
		CodeInternal, CodeDumpProcessFailed, CodeNoSpaceLeftOnDevice, CodeTooManyOpenFiles,
		CodeInvalidContentType, CodeMissingContentType, CodeMalformedPayload, CodeMissingPayload,
		CodePayloadTooLarge, CodeBadRequest, CodeDatabaseSizeLimitReached,
	} {
		knownCodes[c] = struct{}{}
	}
}

// IsKnown reports whether c is a code this client was built against.
func (c ErrorCode) IsKnown() bool {
	_, ok := knownCodes[c]
	return ok
}

func (c *ErrorCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = ParseErrorCode(s)
	return nil
}

// ParseErrorCode maps a server code, in any case, onto the known codes.
// Anything else is CodeUnknown.
func ParseErrorCode(s string) ErrorCode {
	code := ErrorCode(strings.ToLower(s))
	if alias, ok := codeAliases[code]; ok {
		code = alias
	}
	if !code.IsKnown() {
		return CodeUnknown
	}
	return code
}
