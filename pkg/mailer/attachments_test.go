package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAttachment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "brief.pdf")
	pdf := []byte("%PDF-1.4 test content")
	require.NoError(t, os.WriteFile(path, pdf, 0o600))

	att, err := LoadAttachment(path)
	require.NoError(t, err)
	require.Equal(t, "brief.pdf", att.Filename)
	require.Equal(t, "application/pdf", att.ContentType)
	require.Equal(t, pdf, att.Content)
}

func TestLoadAttachment_UnknownExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.unknownext")
	require.NoError(t, os.WriteFile(path, []byte("plain text notes"), 0o600))

	att, err := LoadAttachment(path)
	require.NoError(t, err)
	// Falls back to sniffing when the extension is not registered.
	require.Contains(t, att.ContentType, "text/plain")
}

func TestLoadAttachment_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadAttachment(filepath.Join(t.TempDir(), "nope.pdf"))
	require.ErrorIs(t, err, ErrAttachmentNotFound)
}
