package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"yatra/models"
)

// Predict sends one JPEG to the classifier. No auth required.
func (c *Client) Predict(ctx context.Context, filename string, image io.Reader) (*models.Prediction, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.base+"/api/image/predict", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, readErrMessage(resp.Body))
	}

	var pred models.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrServer, err)
	}
	return &pred, nil
}
