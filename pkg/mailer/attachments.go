package mailer

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// LoadAttachment reads a local file into an Attachment. The content type
// comes from the file extension, falling back to content sniffing. A
// missing file returns ErrAttachmentNotFound so callers can skip it and
// proceed with the send.
func LoadAttachment(path string) (Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Attachment{}, errors.Join(ErrAttachmentNotFound, err)
		}
		return Attachment{}, err
	}

	ctype := mime.TypeByExtension(filepath.Ext(path))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}

	return Attachment{
		Filename:    filepath.Base(path),
		ContentType: ctype,
		Content:     data,
	}, nil
}
