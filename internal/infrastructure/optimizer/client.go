package optimizer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Event types reported by the external optimization job.
const (
	EventProgress = "progress"
	EventLog      = "log"
	EventError    = "error"
	EventDone     = "done"
)

type Event struct {
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	Log         string `json:"log,omitempty"`
	Message     string `json:"message,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

func (e Event) Terminal() bool {
	return e.Type == EventDone || e.Type == EventError
}

// Job is the handle returned when a job is submitted. Exactly one of
// StreamURL or PollURL is consumed per job.
type Job struct {
	ID        string `json:"job_id"`
	StreamURL string `json:"stream_url,omitempty"`
	PollURL   string `json:"poll_url,omitempty"`
}

type pollResponse struct {
	Status      string `json:"status"`
	Log         string `json:"log,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	pollInterval time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		// No overall timeout: streams stay open for the life of the job.
		httpClient:   &http.Client{},
		baseURL:      strings.TrimRight(baseURL, "/"),
		pollInterval: 3 * time.Second,
	}
}

// Submit posts a job description and returns its handle. The job itself is
// fire-and-forget: there are no retry or resume semantics.
func (c *Client) Submit(ctx context.Context, requirements string, payload interface{}) (*Job, error) {
	body, err := json.Marshal(map[string]interface{}{
		"requirements": requirements,
		"payload":      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode job payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job submission failed: status %d", resp.StatusCode)
	}

	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to decode job handle: %w", err)
	}
	if job.ID == "" {
		return nil, fmt.Errorf("job submission returned no job_id")
	}
	return &job, nil
}

// Subscribe opens the single active subscription for a job and invokes fn
// for every event in arrival order. It returns when a terminal event
// arrives or the context is cancelled. Stream is preferred; polling is the
// fallback.
func (c *Client) Subscribe(ctx context.Context, job *Job, fn func(Event)) error {
	if job.StreamURL != "" {
		return c.stream(ctx, job.StreamURL, fn)
	}
	if job.PollURL != "" {
		return c.poll(ctx, job.PollURL, fn)
	}
	return fmt.Errorf("job %s has no stream or poll URL", job.ID)
}

func (c *Client) stream(ctx context.Context, streamURL string, fn func(Event)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to open event stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("event stream returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data:") {
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
			continue
		}
		if line != "" {
			// Comment or field we do not use.
			continue
		}
		if data.Len() == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal([]byte(data.String()), &ev); err != nil {
			data.Reset()
			continue
		}
		data.Reset()

		fn(ev)
		if ev.Terminal() {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("event stream read failed: %w", err)
	}
	return ctx.Err()
}

func (c *Client) poll(ctx context.Context, pollURL string, fn func(Event)) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.pollOnce(ctx, pollURL)
		if err != nil {
			return err
		}

		switch status.Status {
		case "done":
			fn(Event{Type: EventDone, DownloadURL: status.DownloadURL, Log: status.Log})
			return nil
		case "error":
			fn(Event{Type: EventError, Message: status.Message, Log: status.Log})
			return nil
		default:
			if status.Log != "" {
				fn(Event{Type: EventLog, Log: status.Log})
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) pollOnce(ctx context.Context, pollURL string) (*pollResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pollURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status poll failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status poll returned %d", resp.StatusCode)
	}

	var status pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode poll response: %w", err)
	}
	return &status, nil
}
