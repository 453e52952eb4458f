package curriculum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainText(t *testing.T) {
	text, err := Extract("notes.txt", []byte("Chapter 1: The Water Cycle\n"))

	require.NoError(t, err)
	assert.Equal(t, "Chapter 1: The Water Cycle", text)
}

func TestExtract_Markdown(t *testing.T) {
	text, err := Extract("Syllabus.MD", []byte("# Term Plan\n\n- Fractions\n- Decimals"))

	require.NoError(t, err)
	assert.Contains(t, text, "Fractions")
}

func TestExtract_InvalidUTF8(t *testing.T) {
	_, err := Extract("notes.txt", []byte{0xff, 0xfe, 0x00})

	assert.ErrorContains(t, err, "not valid UTF-8")
}

func TestExtract_Empty(t *testing.T) {
	_, err := Extract("notes.txt", nil)

	assert.ErrorContains(t, err, "empty")
}

func TestExtract_WhitespaceOnly(t *testing.T) {
	_, err := Extract("notes.txt", []byte("   \n\t  "))

	assert.ErrorContains(t, err, "no text content")
}

func TestExtract_TooLarge(t *testing.T) {
	big := []byte(strings.Repeat("a", MaxDocumentBytes+1))

	_, err := Extract("notes.txt", big)

	assert.ErrorContains(t, err, "too large")
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := Extract("slides.pptx", []byte("data"))

	var ute *UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "slides.pptx", ute.Name)
}

func TestExtract_BadPDF(t *testing.T) {
	_, err := Extract("book.pdf", []byte("definitely not a pdf"))

	assert.ErrorContains(t, err, "reading pdf")
}
