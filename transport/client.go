// Package transport sends the translate request to the backend: multipart
// image plus the three form settings in, {status, data|message} JSON out.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/menulens/menulens-go/tool"
	"github.com/menulens/menulens-go/types"
)

const translatePath = "/api/translate"

// Client talks to the menu-translation backend.
type Client struct {
	baseURL string
	http    *http.Client
	// probe checks backend host reachability when a request fails; nil
	// disables the check.
	probe func(host string, timeout time.Duration) bool
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    tool.GetHttpClient(),
		probe:   ProbeHost,
	}
}

// DisableReachabilityProbe turns off the ICMP preflight on failed requests,
// for networks that filter echo requests.
func (c *Client) DisableReachabilityProbe() {
	c.probe = nil
}

// Send uploads the image and settings and returns the structured
// translation. A context cancellation is wrapped so callers can tell it
// apart from transport failures; every other failure carries the backend's
// message verbatim.
func (c *Client) Send(ctx context.Context, upload types.Upload, opts types.TranslateOptions) (*types.MenuTranslation, error) {
	if len(upload.Data) == 0 {
		return nil, fmt.Errorf("invalid parameters: upload data must not be empty")
	}

	// Check if already cancelled
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("translate cancelled: %w", ctx.Err())
	default:
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %v", err)
	}
	_ = writer.WriteField("currency", opts.Currency)
	_ = writer.WriteField("model", opts.Model)
	_ = writer.WriteField("include_images", strconv.FormatBool(opts.IncludeImages))
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+translatePath, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		// Check if it was cancelled
		if ctx.Err() != nil {
			return nil, fmt.Errorf("translate cancelled: %w", ctx.Err())
		}
		if host := c.host(); host != "" && c.probe != nil && !c.probe(host, time.Second) {
			return nil, fmt.Errorf("backend %s unreachable: %v", host, err)
		}
		return nil, fmt.Errorf("failed to send translate request: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("translate cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to read translate response: %v", err)
	}

	var envelope types.TranslateEnvelope
	if unmarshalErr := sonic.Unmarshal(data, &envelope); unmarshalErr != nil {
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("translate request failed: %s", resp.Status)
		}
		return nil, fmt.Errorf("failed to parse translate response: %v", unmarshalErr)
	}

	if envelope.Status == "success" && envelope.Data != nil {
		return envelope.Data, nil
	}
	if envelope.Message != "" {
		return nil, fmt.Errorf("%s", envelope.Message)
	}
	return nil, fmt.Errorf("translate request failed: %s", resp.Status)
}

// host extracts the backend hostname for the reachability probe.
func (c *Client) host() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
