package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DashScopeProvider talks to Alibaba's DashScope text-generation endpoint.
type DashScopeProvider struct {
	apiKey     string
	modelName  string
	apiURL     string
	httpClient *http.Client
}

type DashScopeRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []DashScopeMessage `json:"messages"`
	} `json:"input"`
}

type DashScopeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type DashScopeResponse struct {
	Output struct {
		Text    string `json:"text,omitempty"`
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

func NewDashScopeProvider(apiKey, modelName, apiURL string, httpClient *http.Client) *DashScopeProvider {
	return &DashScopeProvider{
		apiKey:     apiKey,
		modelName:  modelName,
		apiURL:     apiURL,
		httpClient: httpClient,
	}
}

func (d *DashScopeProvider) Name() string  { return ProviderDashScope }
func (d *DashScopeProvider) Model() string { return d.modelName }

func (d *DashScopeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := DashScopeRequest{Model: d.modelName}
	reqBody.Input.Messages = []DashScopeMessage{{Role: "user", Content: prompt}}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Code != "" {
			return "", &HTTPStatusError{
				StatusCode: resp.StatusCode,
				URL:        d.apiURL,
				Body:       fmt.Sprintf("%s - %s (request_id: %s)", errorResp.Code, errorResp.Message, errorResp.RequestID),
			}
		}
		return "", &HTTPStatusError{StatusCode: resp.StatusCode, URL: d.apiURL, Body: string(body)}
	}

	var dashScopeResp DashScopeResponse
	if err := json.Unmarshal(body, &dashScopeResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if dashScopeResp.Code != "" && dashScopeResp.Code != "Success" {
		return "", fmt.Errorf("API error: %s - %s", dashScopeResp.Code, dashScopeResp.Message)
	}

	// Older models answer in output.text, chat models in output.choices.
	if len(dashScopeResp.Output.Choices) > 0 {
		return dashScopeResp.Output.Choices[0].Message.Content, nil
	}
	if dashScopeResp.Output.Text != "" {
		return dashScopeResp.Output.Text, nil
	}
	return "", fmt.Errorf("no response from AI model")
}
