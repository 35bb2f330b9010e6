package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

type FileService struct {
	c *Client
}

type filePart struct {
	field    string
	filename string
	data     []byte
}

// doMultipart mirrors Client.do for multipart bodies, including the single
// 401 refresh-and-replay. The body is rebuilt per attempt since a bytes
// reader cannot be rewound once consumed by the transport.
func (s *FileService) doMultipart(ctx context.Context, path string, fields map[string]string, parts []filePart, out interface{}) error {

	send := func() (*http.Response, []byte, error) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		for key, value := range fields {
			if err := writer.WriteField(key, value); err != nil {
				return nil, nil, err
			}
		}
		for _, part := range parts {
			fw, err := writer.CreateFormFile(part.field, part.filename)
			if err != nil {
				return nil, nil, err
			}
			if _, err := fw.Write(part.data); err != nil {
				return nil, nil, err
			}
		}
		if err := writer.Close(); err != nil {
			return nil, nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.baseURL+path, &buf)
		if err != nil {
			return nil, nil, err
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		if token := s.c.tokens.Get(AccessTokenKey); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := s.c.http.Do(req)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, nil, err
		}
		return resp, respBody, nil
	}

	resp, respBody, err := send()
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := s.c.refreshTokens(ctx); err != nil {
			return err
		}
		resp, respBody, err = send()
		if err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		return json.Unmarshal(respBody, out)
	}
	return nil
}

func (s *FileService) UploadLogo(ctx context.Context, filename string, data []byte) (*UploadResponse, error) {
	var result UploadResponse
	err := s.doMultipart(ctx, "/api/v1/files/upload/logo", nil,
		[]filePart{{field: "file", filename: filename, data: data}}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *FileService) UploadDocument(ctx context.Context, filename string, data []byte, docType string) (*UploadResponse, error) {
	fields := map[string]string{}
	if docType != "" {
		fields["doc_type"] = docType
	}
	var result UploadResponse
	err := s.doMultipart(ctx, "/api/v1/files/upload/document", fields,
		[]filePart{{field: "file", filename: filename, data: data}}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *FileService) UploadMultiple(ctx context.Context, files map[string][]byte, docType string) (*MultiUploadResponse, error) {
	fields := map[string]string{}
	if docType != "" {
		fields["doc_type"] = docType
	}
	parts := make([]filePart, 0, len(files))
	for filename, data := range files {
		parts = append(parts, filePart{field: "files", filename: filename, data: data})
	}
	var result MultiUploadResponse
	if err := s.doMultipart(ctx, "/api/v1/files/upload/multiple", fields, parts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *FileService) Delete(ctx context.Context, fileUrl string) error {
	query := url.Values{}
	query.Set("file_url", fileUrl)
	return s.c.do(ctx, http.MethodDelete, "/api/v1/files/delete", query, nil, nil)
}
