package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/edu-platform/educlient/shared/upload"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// multipartBody is a multipart/form-data payload: the JSON metadata under the
// "json" field, optional plain fields and at most one file part.
type multipartBody struct {
	payload   any
	fields    [][2]string
	fileField string
	file      *upload.Prepared

	pr *io.PipeReader
}

func newMultipart(payload any, fileField string, file *upload.Prepared) *multipartBody {
	m := &multipartBody{payload: payload, fileField: fileField, file: file}
	if file != nil && file.ImageWidth != nil && file.ImageHeight != nil {
		m.fields = append(m.fields,
			[2]string{"image_width", strconv.Itoa(*file.ImageWidth)},
			[2]string{"image_height", strconv.Itoa(*file.ImageHeight)},
		)
	}
	return m
}

// reader streams the body through a pipe so that large files are never
// buffered in memory.
func (m *multipartBody) reader() (io.Reader, string) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	m.pr = pr

	go func() {
		err := m.write(writer)
		if err == nil {
			err = writer.Close()
		}
		pw.CloseWithError(err)
	}()

	return pr, writer.FormDataContentType()
}

// abort unblocks the writer goroutine when the request is never sent.
func (m *multipartBody) abort(err error) {
	if m.pr != nil {
		m.pr.CloseWithError(err)
	}
}

func (m *multipartBody) write(writer *multipart.Writer) error {
	if m.payload != nil {
		jsonData, err := json.Marshal(m.payload)
		if err != nil {
			return err
		}
		if err := writer.WriteField("json", string(jsonData)); err != nil {
			return err
		}
	}

	for _, f := range m.fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}

	if m.file == nil {
		return nil
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(m.fileField), escapeQuotes(m.file.Filename)))
	if m.file.MimeType != "" {
		h.Set("Content-Type", m.file.MimeType)
	}

	part, err := writer.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, m.file.Content)
	return err
}
