package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/config"
)

// UploadResult mirrors the fields of the Cloudinary upload response that the
// rest of the system consumes. The URL is treated as an opaque string.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Uploader accepts an audio buffer and returns a durable URL.
type Uploader interface {
	UploadAudio(ctx context.Context, data []byte, publicID string) (*UploadResult, error)
}

type cloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	baseURL   string
	client    *http.Client
}

func NewCloudinaryUploader(cfg *config.Config) Uploader {
	return &cloudinaryUploader{
		cloudName: cfg.Cloudinary.CloudName,
		apiKey:    cfg.Cloudinary.APIKey,
		apiSecret: cfg.Cloudinary.APISecret,
		folder:    cfg.Cloudinary.Folder,
		baseURL:   "https://api.cloudinary.com/v1_1",
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// UploadAudio performs a signed upload. Audio goes through Cloudinary's
// "video" resource type and is transcoded to mp3 for web playback.
func (u *cloudinaryUploader) UploadAudio(ctx context.Context, data []byte, publicID string) (*UploadResult, error) {
	params := map[string]string{
		"folder":    u.folder,
		"format":    "mp3",
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	signature := signParams(params, u.apiSecret)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, val := range params {
		if err := writer.WriteField(key, val); err != nil {
			return nil, fmt.Errorf("error writing upload field %s: %w", key, err)
		}
	}
	if err := writer.WriteField("api_key", u.apiKey); err != nil {
		return nil, fmt.Errorf("error writing api_key field: %w", err)
	}
	if err := writer.WriteField("signature", signature); err != nil {
		return nil, fmt.Errorf("error writing signature field: %w", err)
	}
	part, err := writer.CreateFormFile("file", publicID)
	if err != nil {
		return nil, fmt.Errorf("error creating file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("error writing file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error finalizing upload body: %w", err)
	}

	url := fmt.Sprintf("%s/%s/video/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("error building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error uploading audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().Int("status", resp.StatusCode).Bytes("body", payload).Msg("Cloudinary upload failed")
		return nil, fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding upload response: %w", err)
	}
	return &result, nil
}

// signParams builds the Cloudinary API signature: parameters sorted by key,
// joined as key=value with '&', with the API secret appended, SHA-1 hashed.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(key)
		buf.WriteByte('=')
		buf.WriteString(params[key])
	}
	buf.WriteString(secret)

	sum := sha1.Sum(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
