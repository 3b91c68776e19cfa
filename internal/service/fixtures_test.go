package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG, the smallest well-formed payload worth uploading.
const pngPixelB64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func pngPixel(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(pngPixelB64)
	require.NoError(t, err)
	return data
}

func dataURIPixel(t *testing.T) string {
	t.Helper()
	return "data:image/png;base64," + pngPixelB64
}
