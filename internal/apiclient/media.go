package apiclient

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"

	"warbler/internal/model"
)

// MediaURL is the stable mapping from a media id to its fetchable location.
func (c *HTTPClient) MediaURL(id string) string {
	return c.baseURL + "/api/media/" + url.PathEscape(id)
}

func (c *HTTPClient) UploadTweetMedia(ctx context.Context, filename string, data []byte) (string, error) {
	return c.uploadMedia(ctx, "upload_tweet_media", "/api/media/upload", filename, data)
}

func (c *HTTPClient) UploadProfilePhoto(ctx context.Context, filename string, data []byte) (string, error) {
	return c.uploadMedia(ctx, "upload_profile_photo", "/api/media/profile-photo", filename, data)
}

func (c *HTTPClient) UploadBannerPhoto(ctx context.Context, filename string, data []byte) (string, error) {
	return c.uploadMedia(ctx, "upload_banner_photo", "/api/media/banner-photo", filename, data)
}

func (c *HTTPClient) uploadMedia(ctx context.Context, op, path, filename string, data []byte) (string, error) {
	body, contentType, err := multipartFile("file", filename, data)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	var out struct {
		MediaID string `json:"media_id"`
	}
	if err := c.send(req, op, &out); err != nil {
		return "", err
	}
	return out.MediaID, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, bio string) (model.User, error) {
	in := struct {
		Bio string `json:"bio"`
	}{bio}
	var out wireUser
	if err := c.do(ctx, "update_profile", http.MethodPut, "/api/users/profile", in, &out); err != nil {
		return model.User{}, err
	}
	return out.toModel(), nil
}

func multipartFile(field, filename string, data []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
