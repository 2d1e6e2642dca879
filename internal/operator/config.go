/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drone/envsubst"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/sap/go-generics/maps"
	"github.com/spf13/cast"

	"github.com/gaborbk/livepatch-k8s-operator/api/v1alpha1"
	"github.com/gaborbk/livepatch-k8s-operator/pkg/types"
)

const (
	serverPort     = 8080
	databaseName   = "livepatch-server"
	logFile        = "/var/log/livepatch"
	configLocation = "/etc/livepatch.yaml"
)

// buildEnvironment renders the server's LP_* environment from the component
// spec and its resolved references. The second return value tells whether
// LP_PATCH_SYNC_TOKEN has to be taken from the managed resource token secret
// (instead of being part of the rendered environment).
func buildEnvironment(server *v1alpha1.LivepatchServer) (map[string]string, bool, error) {
	spec := &server.Spec

	dsn, err := composeDatabaseDSN(&spec.Database)
	if err != nil {
		return nil, false, err
	}

	if spec.Server.URLTemplate == "" {
		return nil, false, types.NewRetriableError(errors.New("✘ server.url-template config not set"), nil)
	}

	env := map[string]string{
		"LIVEPATCH_CONFIG_LOCATION":     configLocation,
		"LP_SERVER_SERVER_ADDRESS":      fmt.Sprintf(":%d", serverPort),
		"LP_DATABASE_CONNECTION_STRING": dsn,
		"LP_SERVER_URL_TEMPLATE":        spec.Server.URLTemplate,
		"LP_SERVER_IS_HOSTED":           cast.ToString(isHosted(spec)),
		"LP_SERVER_LOG_LEVEL":           spec.Server.LogLevel,
	}

	storageType := "postgres"
	if spec.PatchStorage != nil && spec.PatchStorage.Type != "" {
		storageType = spec.PatchStorage.Type
	}
	env["LP_PATCH_STORAGE_TYPE"] = storageType
	if storageType == "postgres" {
		storageDSN := dsn
		if spec.PatchStorage != nil && spec.PatchStorage.PostgresURISecret != nil {
			storageDSN = stripQueryParameters(string(spec.PatchStorage.PostgresURISecret.Value()))
		}
		env["LP_PATCH_STORAGE_POSTGRES_CONNECTION_STRING"] = storageDSN
	}

	syncEnabled := true
	if spec.PatchSync != nil && spec.PatchSync.Enabled != nil {
		syncEnabled = *spec.PatchSync.Enabled
	}
	hasSyncToken := spec.PatchSync != nil && spec.PatchSync.TokenSecret != nil
	useResourceTokenSecret := false

	if spec.Contracts != nil && spec.Contracts.Airgapped != nil {
		if spec.Contracts.ContractTokenSecret != nil {
			return nil, false, errors.New("spec.contracts.airgapped and spec.contracts.contractTokenSecret are mutually exclusive")
		}
		env["LP_CONTRACTS_ENABLED"] = "true"
		env["LP_CONTRACTS_URL"] = airgappedContractsURL(spec.Contracts.Airgapped)
		// without an explicit sync token the syncing is disabled in air-gapped setups;
		// it remains possible when chaining multiple air-gapped servers
		if !hasSyncToken {
			syncEnabled = false
		}
	} else {
		if spec.Contracts != nil && spec.Contracts.URL != "" {
			env["LP_CONTRACTS_URL"] = spec.Contracts.URL
		}
		if !hasSyncToken {
			if spec.Contracts != nil && spec.Contracts.ContractTokenSecret != nil {
				useResourceTokenSecret = true
			} else if !isHosted(spec) && syncEnabled {
				return nil, false, types.NewRetriableError(
					errors.New("✘ patch-sync token not set; set spec.patchSync.tokenSecret or spec.contracts.contractTokenSecret"), nil)
			}
		}
		if syncEnabled {
			env["LP_PATCH_SYNC_ID"] = string(server.GetUID())
		}
	}

	env["LP_PATCH_SYNC_ENABLED"] = cast.ToString(syncEnabled)
	if hasSyncToken {
		env["LP_PATCH_SYNC_TOKEN"] = string(spec.PatchSync.TokenSecret.Value())
	}

	if spec.CVECatalog != nil {
		env["LP_CVE_SYNC_ENABLED"] = "true"
		env["LP_CVE_SYNC_SOURCE_URL"] = spec.CVECatalog.URL
	}

	// extra config keys are rendered verbatim; values may reference other
	// environment variables in $VAR form
	extraKeys := maps.Keys(spec.ExtraConfig)
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		value, err := envsubst.Eval(spec.ExtraConfig[key], func(name string) string { return env[name] })
		if err != nil {
			return nil, false, errors.Wrapf(err, "error expanding extra config value %s", key)
		}
		env[configKeyToEnvName(key)] = value
	}

	// drop empty environment values
	for key, value := range env {
		if value == "" {
			delete(env, key)
		}
	}

	return env, useResourceTokenSecret, nil
}

// composeDatabaseDSN derives the postgres connection string from whichever
// database source is configured. Exactly one source must be set.
func composeDatabaseDSN(database *v1alpha1.DatabaseSpec) (string, error) {
	if database.ConnectionSecret != nil && database.URISecret != nil {
		return "", errors.New("spec.database.connectionSecret and spec.database.uriSecret are mutually exclusive")
	}
	switch {
	case database.ConnectionSecret != nil:
		data := database.ConnectionSecret.Data()
		username := string(data["username"])
		password := string(data["password"])
		if username == "" || password == "" {
			return "", types.NewRetriableError(errors.Errorf("connection details in secret %s are incomplete (missing username or password)", database.ConnectionSecret.Name), nil)
		}
		// endpoints is a comma-separated list; the first entry is the primary
		endpoint := strings.SplitN(string(data["endpoints"]), ",", 2)[0]
		if endpoint == "" {
			endpoint = string(data["host"])
			if port := string(data["port"]); endpoint != "" && port != "" {
				endpoint = endpoint + ":" + port
			}
		}
		if endpoint == "" {
			return "", types.NewRetriableError(errors.Errorf("connection details in secret %s are incomplete (missing endpoints)", database.ConnectionSecret.Name), nil)
		}
		return fmt.Sprintf("postgresql://%s:%s@%s/%s", username, password, endpoint, databaseName), nil
	case database.URISecret != nil:
		return stripQueryParameters(string(database.URISecret.Value())), nil
	default:
		return "", types.NewRetriableError(errors.New("waiting for database connection details"), nil)
	}
}

// stripQueryParameters removes query parameters from a postgres URI; some of
// them (such as fallback_application_name) are not understood by the schema
// tool and make it fail.
func stripQueryParameters(uri string) string {
	return strings.SplitN(uri, "?", 2)[0]
}

func airgappedContractsURL(airgapped *v1alpha1.AirgappedSpec) string {
	scheme := airgapped.Scheme
	if scheme == "" {
		scheme = "http"
	}
	netloc := airgapped.Hostname
	if airgapped.Port != 0 {
		netloc = fmt.Sprintf("%s:%d", netloc, airgapped.Port)
	}
	return scheme + "://" + netloc
}

func isHosted(spec *v1alpha1.LivepatchServerSpec) bool {
	if spec.Server.IsHosted == nil {
		return true
	}
	return *spec.Server.IsHosted
}

// configKeyToEnvName maps a dotted config key to the according LP_* environment
// variable name, for example server.url-template to LP_SERVER_URL_TEMPLATE.
func configKeyToEnvName(key string) string {
	key = strings.NewReplacer(".", "_", "-", "_").Replace(key)
	return "LP_" + strcase.ToScreamingSnake(key)
}
