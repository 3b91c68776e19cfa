// Package images stores locally-uploaded profile image overrides in the
// portal KV, keyed per employee id. An override takes precedence over the
// upstream profileImage until it is replaced; overrides are never expired.
package images

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/store"
)

const imageKeyPrefix = "portal:image:"

// stored is the KV value: payload plus content type, so the image handler
// can serve the bytes back with the right header.
type stored struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"` // base64 in JSON
}

type Resolver struct {
	kv     store.KV
	logger *zap.Logger
}

func NewResolver(kv store.KV, logger *zap.Logger) *Resolver {
	return &Resolver{kv: kv, logger: logger}
}

func imageKey(employeeID string) string { return imageKeyPrefix + employeeID }

// Ref returns the stable URL an override is served under.
func Ref(employeeID string) string { return "/api/images/" + employeeID }

// ResolveAll returns employeeID -> reference for every stored override.
func (r *Resolver) ResolveAll(ctx context.Context) (map[string]string, error) {
	keys, err := r.kv.ScanKeys(ctx, imageKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan image overrides: %w", err)
	}
	refs := make(map[string]string, len(keys))
	for _, k := range keys {
		id := strings.TrimPrefix(k, imageKeyPrefix)
		refs[id] = Ref(id)
	}
	return refs, nil
}

// Save stores binary image data for the employee, replacing any prior
// override, and returns the serving reference.
func (r *Resolver) Save(ctx context.Context, employeeID string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	raw, err := json.Marshal(stored{ContentType: contentType, Data: data})
	if err != nil {
		return "", fmt.Errorf("encode image override: %w", err)
	}
	if err := r.kv.Set(ctx, imageKey(employeeID), string(raw), 0); err != nil {
		return "", &domain.StorageWriteError{Key: imageKey(employeeID), Err: err}
	}
	r.logger.Debug("Saved image override",
		zap.String("employee_id", employeeID),
		zap.Int("bytes", len(data)),
	)
	return Ref(employeeID), nil
}

// SaveFromDataURI decodes an inline data:image/...;base64 URI and delegates
// to Save. Malformed input fails with DecodeError.
func (r *Resolver) SaveFromDataURI(ctx context.Context, employeeID string, uri string) (string, error) {
	contentType, data, err := decodeDataURI(uri)
	if err != nil {
		return "", err
	}
	return r.Save(ctx, employeeID, data, contentType)
}

// Load returns the stored override bytes and content type for serving.
func (r *Resolver) Load(ctx context.Context, employeeID string) ([]byte, string, error) {
	raw, err := r.kv.Get(ctx, imageKey(employeeID))
	if err == store.ErrMiss {
		return nil, "", domain.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	var s stored
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, "", fmt.Errorf("decode image override: %w", err)
	}
	return s.Data, s.ContentType, nil
}

// IsDataURI reports whether s is an inline-encoded image rather than a
// plain reference.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}

func decodeDataURI(uri string) (contentType string, data []byte, err error) {
	if !IsDataURI(uri) {
		return "", nil, &domain.DecodeError{Reason: "not a data:image URI"}
	}
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, &domain.DecodeError{Reason: "missing payload separator"}
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, &domain.DecodeError{Reason: "payload is not base64-encoded"}
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, &domain.DecodeError{Reason: "invalid base64 payload"}
	}
	if len(data) == 0 {
		return "", nil, &domain.DecodeError{Reason: "empty image payload"}
	}
	return contentType, data, nil
}
