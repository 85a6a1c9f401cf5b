package book

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// CSVHeader is the first line of every export.
const CSVHeader = "Index,ISBN,Title,Authors,Publisher,Likes,Reviews"

// CSVWriter writes books in the export layout. Text columns are always quoted
// with embedded quotes doubled; numeric columns are never quoted. Only the
// review count is exported, not review bodies.
type CSVWriter struct {
	w   *bufio.Writer
	err error
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (c *CSVWriter) WriteHeader() error {
	c.writeString(CSVHeader)
	c.writeByte('\n')
	return c.err
}

// Write appends one line per book, in order.
func (c *CSVWriter) Write(books ...Book) error {
	for i := range books {
		c.writeBook(&books[i])
	}
	return c.err
}

// Flush writes any buffered data to the underlying writer.
func (c *CSVWriter) Flush() error {
	if c.err != nil {
		return c.err
	}
	c.err = c.w.Flush()
	return c.err
}

func (c *CSVWriter) writeBook(b *Book) {
	c.writeString(strconv.Itoa(b.Index))
	c.writeByte(',')
	// ISBNs are digits and hyphens only.
	c.writeQuoted(b.ISBN, false)
	c.writeByte(',')
	c.writeQuoted(b.Title, true)
	c.writeByte(',')
	c.writeQuoted(strings.Join(b.Authors, "; "), true)
	c.writeByte(',')
	c.writeQuoted(b.Publisher, true)
	c.writeByte(',')
	c.writeString(strconv.Itoa(b.Likes))
	c.writeByte(',')
	c.writeString(strconv.Itoa(len(b.Reviews)))
	c.writeByte('\n')
}

func (c *CSVWriter) writeQuoted(s string, escape bool) {
	c.writeByte('"')
	if escape {
		s = escapeCSV(s)
	}
	c.writeString(s)
	c.writeByte('"')
}

func (c *CSVWriter) writeString(s string) {
	if c.err != nil {
		return
	}
	_, c.err = c.w.WriteString(s)
}

func (c *CSVWriter) writeByte(b byte) {
	if c.err != nil {
		return
	}
	c.err = c.w.WriteByte(b)
}

func escapeCSV(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, `"`, `""`)
}

// WriteCSV writes the header followed by books and flushes.
func WriteCSV(w io.Writer, books []Book) error {
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.Write(books...); err != nil {
		return err
	}
	return cw.Flush()
}

// ExportCSV renders books as a CSV document.
func ExportCSV(books []Book) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = WriteCSV(&sb, books)
	return sb.String()
}
