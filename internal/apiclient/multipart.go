package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/kelola-aset/kelola/internal/model"
)

// FormField is one ordered name/value pair of an asset submission. The
// backend is picky about field names, so drafts emit them explicitly
// instead of relying on struct tags.
type FormField struct {
	Name  string
	Value string
}

// Attachment is an optional binary part (the asset image). Its
// presence switches the submission to multipart encoding.
type Attachment struct {
	Field    string
	Filename string
	Data     []byte
}

// UpdateAsset submits an asset edit. JSON when there is no attachment,
// multipart/form-data when there is; callers never care which.
func (c *Client) UpdateAsset(ctx context.Context, id string, fields []FormField, attachment *Attachment) (model.Asset, error) {
	return c.sendAsset(ctx, http.MethodPut, apiPrefix+"/aset/"+id, fields, attachment)
}

func (c *Client) sendAsset(ctx context.Context, method, path string, fields []FormField, attachment *Attachment) (model.Asset, error) {
	var resp itemEnvelope[model.Asset]

	if attachment == nil {
		payload := make(map[string]string, len(fields))
		for _, f := range fields {
			payload[f.Name] = f.Value
		}
		var err error
		if method == http.MethodPost {
			err = c.postJSON(ctx, path, payload, &resp)
		} else {
			err = c.putJSON(ctx, path, payload, &resp)
		}
		if err != nil {
			return model.Asset{}, err
		}
		return resp.Data, nil
	}

	body, contentType, err := encodeMultipart(fields, attachment)
	if err != nil {
		return model.Asset{}, err
	}
	if err := c.do(ctx, method, path, contentType, body, &resp); err != nil {
		return model.Asset{}, err
	}
	return resp.Data, nil
}

func encodeMultipart(fields []FormField, attachment *Attachment) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", f.Name, err)
		}
	}
	part, err := w.CreateFormFile(attachment.Field, attachment.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(attachment.Data); err != nil {
		return nil, "", fmt.Errorf("writing attachment: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
