package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	apperrors "tryon/internal/errors"
)

// ObjectStore is the slice of the object-store client the try-on flow needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
}

// TryOnResult carries the stored-object URLs plus the echoed clothing metadata.
// Nothing is persisted to the database; callers save an Outfit separately.
type TryOnResult struct {
	OriginalPhotoURL string
	ResultPhotoURL   string
	ClothingID       string
	ClothingName     string
}

// TryOnService stores an uploaded photo and produces the try-on "result".
// The result is currently a passthrough re-encode of the original photo;
// no garment compositing happens server-side.
type TryOnService interface {
	Process(ctx context.Context, requestID, userPhoto, clothingID, clothingName string) (*TryOnResult, error)
}

type tryOnService struct {
	store   ObjectStore
	timeout time.Duration
}

// NewTryOnService builds a TryOnService on top of an object store.
func NewTryOnService(store ObjectStore, timeout time.Duration) TryOnService {
	return &tryOnService{store: store, timeout: timeout}
}

func (s *tryOnService) Process(ctx context.Context, requestID, userPhoto, clothingID, clothingName string) (*TryOnResult, error) {
	photo, err := decodePhoto(userPhoto)
	if err != nil {
		return nil, err
	}

	originalKey := fmt.Sprintf("tryon/original_%s.jpg", requestID)
	resultKey := fmt.Sprintf("tryon/result_%s.jpg", requestID)

	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Put(dctx, originalKey, photo, "image/jpeg"); err != nil {
		return nil, apperrors.WrapDependency(err)
	}

	result, err := reencodeJPEG(photo)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(dctx, resultKey, result, "image/jpeg"); err != nil {
		return nil, apperrors.WrapDependency(err)
	}

	return &TryOnResult{
		OriginalPhotoURL: s.store.PublicURL(originalKey),
		ResultPhotoURL:   s.store.PublicURL(resultKey),
		ClothingID:       clothingID,
		ClothingName:     clothingName,
	}, nil
}

// decodePhoto strips an optional data-URL header up to the first comma and
// base64-decodes the remainder. Uploaded payloads may carry embedded
// newlines, so whitespace is discarded before decoding.
func decodePhoto(payload string) ([]byte, error) {
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	payload = strings.Join(strings.Fields(payload), "")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhotoPayload, err)
	}
	return data, nil
}

func reencodeJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhotoPayload, err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhotoPayload, err)
	}
	return buf.Bytes(), nil
}
