/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gaborbk/livepatch-k8s-operator/internal/metrics"
)

const defaultContractsURL = "https://contracts.canonical.com"

// ContractsClient talks to the (hosted or on-prem) contracts service in order
// to exchange a contract token for a livepatch resource token.
// Proxies are honored through the standard environment variables.
type ContractsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewContractsClient creates a ContractsClient for the given service URL;
// if the URL is empty, the hosted contracts service is used.
func NewContractsClient(url string) *ContractsClient {
	if url == "" {
		url = defaultContractsURL
	}
	return &ContractsClient{
		baseURL:    strings.TrimSuffix(url, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchResourceToken exchanges the given contract token for a machine token,
// and the machine token for a livepatch-onprem resource token.
func (c *ContractsClient) FetchResourceToken(ctx context.Context, contractToken string) (string, error) {
	machineToken, err := c.getMachineToken(ctx, contractToken)
	if err != nil {
		metrics.TokenExchanges.WithLabelValues("error").Inc()
		return "", err
	}
	resourceToken, err := c.getResourceToken(ctx, machineToken)
	if err != nil {
		metrics.TokenExchanges.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.TokenExchanges.WithLabelValues("success").Inc()
	return resourceToken, nil
}

func (c *ContractsClient) getMachineToken(ctx context.Context, contractToken string) (string, error) {
	var response struct {
		MachineToken string `json:"machineToken"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/context/machine-token", contractToken, &response); err != nil {
		return "", errors.Wrap(err, "error fetching machine token")
	}
	if response.MachineToken == "" {
		return "", errors.New("contracts service returned an empty machine token")
	}
	return response.MachineToken, nil
}

func (c *ContractsClient) getResourceToken(ctx context.Context, machineToken string) (string, error) {
	var response struct {
		ResourceToken string `json:"resourceToken"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/resources/livepatch-onprem/token", machineToken, &response); err != nil {
		return "", errors.Wrap(err, "error fetching resource token")
	}
	if response.ResourceToken == "" {
		return "", errors.New("contracts service returned an empty resource token")
	}
	return response.ResourceToken, nil
}

func (c *ContractsClient) do(ctx context.Context, method string, path string, bearerToken string, response any) error {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+bearerToken)
	request.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contracts service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, response)
}
