package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_PlainText(t *testing.T) {
	content := "Experience\nSoftware Engineer at Google"
	text, err := Text([]byte(content), MimePlainText)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestText_HTML(t *testing.T) {
	html := `<html><head><title>Resume</title>
		<style>body { color: red }</style>
		<script>alert("hi")</script></head>
		<body>
			<h1>Jane Doe</h1>
			<p>Software   Engineer</p>
		</body></html>`

	text, err := Text([]byte(html), MimeHTML)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Software Engineer", text)
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color")
}

func TestText_HTMLFragment(t *testing.T) {
	text, err := Text([]byte("just a fragment"), MimeHTML)
	require.NoError(t, err)
	assert.Equal(t, "just a fragment", text)
}

func TestText_UnsupportedMimeType(t *testing.T) {
	_, err := Text([]byte("data"), "image/png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Text([]byte("data"), "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text([]byte("not a pdf at all"), MimePDF)
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, MimePDF, extractionErr.Format)
	assert.NotNil(t, errors.Unwrap(extractionErr))
}

func TestText_CorruptDocx(t *testing.T) {
	_, err := Text([]byte("not a zip archive"), MimeDocx)
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestMimeForExtension(t *testing.T) {
	assert.Equal(t, MimePlainText, MimeForExtension(".txt"))
	assert.Equal(t, MimePDF, MimeForExtension(".PDF"))
	assert.Equal(t, MimeHTML, MimeForExtension(".htm"))
	assert.Equal(t, MimeDocx, MimeForExtension(".docx"))
	assert.Equal(t, MimeDoc, MimeForExtension(".doc"))
	assert.Equal(t, "", MimeForExtension(".xyz"))
	assert.Equal(t, "", MimeForExtension(""))
}
