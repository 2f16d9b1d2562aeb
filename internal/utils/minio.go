package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// DecodeImageData accepts either a data URI ("data:image/png;base64,...")
// or a bare base64 payload and returns the raw bytes plus content type.
func DecodeImageData(s string) ([]byte, string, error) {
	contentType := "image/jpeg"
	if strings.HasPrefix(s, "data:") {
		meta, rest, ok := strings.Cut(s, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		meta = strings.TrimPrefix(meta, "data:")
		if i := strings.IndexByte(meta, ';'); i >= 0 {
			meta = meta[:i]
		}
		if meta != "" {
			contentType = meta
		}
		s = rest
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64 payload: %w", err)
	}
	return data, contentType, nil
}

// ImageExt maps a content type to the object key extension.
func ImageExt(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "bin"
	}
}

// UploadImageToMinio archives an in-memory image payload under the given
// object key.
func UploadImageToMinio(ctx context.Context, minioCli *minio.Client, bucket, key string, data []byte, contentType string) error {
	_, err := minioCli.PutObject(
		ctx,
		bucket,
		strings.TrimPrefix(key, "/"),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return fmt.Errorf("put object to minio failed: %w", err)
	}

	return nil
}
