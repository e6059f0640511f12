// Package upload checks caller-supplied files before they are streamed to
// one of the multipart upload endpoints.
package upload

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

const sniffLen = 512

var (
	ImageMimes    = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	DocumentMimes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	SlidesMimes = []string{
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	}
	VideoMimes = []string{"video/mp4", "video/webm", "video/quicktime"}
)

// File is a binary payload handed over by the caller.
type File struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Prepared is a File that passed the MIME check. Content must be read
// instead of the original reader, which may have been partially consumed.
type Prepared struct {
	Filename    string
	MimeType    string
	Content     io.Reader
	ImageWidth  *int
	ImageHeight *int
}

// Prepare detects the MIME type of f, rejects it unless it is in one of the
// allowed lists and extracts image dimensions when it is an image.
func Prepare(f File, allowed ...[]string) (*Prepared, error) {
	if f.Content == nil || strings.TrimSpace(f.Filename) == "" {
		return nil, ErrEmptyFile
	}

	br := bufio.NewReaderSize(f.Content, sniffLen)
	mimeType, err := DetectMimeType(f.Filename, f.ContentType, br)
	if err != nil {
		return nil, err
	}

	allowedMimes := BuildAllowedMimeMap(allowed...)
	if !allowedMimes[mimeType] {
		return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, f.Filename)
	}

	p := &Prepared{
		Filename: filepath.Base(f.Filename),
		MimeType: mimeType,
		Content:  br,
	}
	if strings.HasPrefix(mimeType, "image/") {
		p.Content, p.ImageWidth, p.ImageHeight = ExtractImageDimensions(br)
	}
	return p, nil
}

func BuildAllowedMimeMap(lists ...[]string) map[string]bool {
	allowedMimes := make(map[string]bool)
	for _, list := range lists {
		for _, m := range list {
			allowedMimes[m] = true
		}
	}
	return allowedMimes
}

// DetectMimeType trusts the declared type unless it is empty or generic, then
// falls back to the file extension and finally to content sniffing.
func DetectMimeType(filename, declared string, content *bufio.Reader) (string, error) {
	mimeType := normalize(declared)

	if mimeType == "" || mimeType == "application/octet-stream" {
		if detected := normalize(mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))); detected != "" {
			mimeType = detected
		}
	}

	if (mimeType == "" || mimeType == "application/octet-stream") && content != nil {
		head, _ := content.Peek(sniffLen)
		if len(head) > 0 {
			mimeType = normalize(http.DetectContentType(head))
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", filename)
	}
	return mimeType, nil
}

// ExtractImageDimensions decodes the image header. The returned reader
// replays the consumed header followed by the rest of r. Undecodable images
// yield nil dimensions, which is not an error.
func ExtractImageDimensions(r io.Reader) (io.Reader, *int, *int) {
	var consumed bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &consumed))
	content := io.MultiReader(&consumed, r)
	if err != nil {
		return content, nil, nil
	}
	width, height := cfg.Width, cfg.Height
	return content, &width, &height
}

func normalize(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(mimeType))
	}
	return parsed
}
